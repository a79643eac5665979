package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
}

type TicketSvc interface {
	IssueTicket(ctx context.Context, eventID, owner string) (*domain.Ticket, error)
	RedeemTicket(ctx context.Context, ticketID string) (*domain.RedeemResult, error)
	GetTicket(ctx context.Context, id string) (*domain.Ticket, error)
}

type Handler struct {
	eventService  EventSvc
	ticketService TicketSvc
}

func NewHandler(eventService EventSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		eventService:  eventService,
		ticketService: ticketService,
	}
}

// Events
func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateEventInput{
		Name:  req.Name,
		Date:  req.Date,
		Venue: req.Venue,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(&e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Tickets

func (h *Handler) IssueTicket(c *ginext.Context) {
	var req dto.IssueTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.IssueTicket(c.Request.Context(), c.Param("eventId"), req.Owner)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) RedeemTicket(c *ginext.Context) {
	result, err := h.ticketService.RedeemTicket(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(result))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	ticket, err := h.ticketService.GetTicket(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// bindJSON treats an empty body as an empty object.
func bindJSON(c *ginext.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.String(http.StatusNotFound, fmt.Sprintf("Event with id=%s not found", c.Param("eventId")))

	case errors.Is(err, domain.ErrTicketNotFound):
		c.String(http.StatusNotFound, fmt.Sprintf("Ticket with id=%s not found", c.Param("ticketId")))

	case errors.Is(err, domain.ErrUnauthorized):
		c.String(http.StatusUnauthorized, "Unauthorized")

	default:
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
