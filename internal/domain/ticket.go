package domain

import "fmt"

type Ticket struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Owner   string `json:"owner"`
	IsUsed  bool   `json:"isUsed"`
}

type RedeemResult struct {
	TicketID string
	Message  string
}

func NewRedeemResult(ticketID string) RedeemResult {
	return RedeemResult{
		TicketID: ticketID,
		Message:  fmt.Sprintf("Ticket with id=%s used successfully", ticketID),
	}
}
