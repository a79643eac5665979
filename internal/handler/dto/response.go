package dto

import (
	"github.com/stpnv0/TicketHub/internal/domain"
)

type EventResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Date    string           `json:"date"`
	Venue   string           `json:"venue"`
	Tickets []TicketResponse `json:"tickets"`
	IsOpen  bool             `json:"isOpen"`
}

type TicketResponse struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Owner   string `json:"owner"`
	IsUsed  bool   `json:"isUsed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToEventResponse always renders tickets as an array, never null.
func ToEventResponse(e *domain.Event) EventResponse {
	tickets := make([]TicketResponse, 0, len(e.Tickets))
	for _, t := range e.Tickets {
		tickets = append(tickets, ToTicketResponse(&t))
	}

	return EventResponse{
		ID:      e.ID,
		Name:    e.Name,
		Date:    e.Date,
		Venue:   e.Venue,
		Tickets: tickets,
		IsOpen:  e.IsOpen,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:      t.ID,
		EventID: t.EventID,
		Owner:   t.Owner,
		IsUsed:  t.IsUsed,
	}
}

func ToMessageResponse(r *domain.RedeemResult) MessageResponse {
	return MessageResponse{Message: r.Message}
}
