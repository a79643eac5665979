package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/handler/dto"
	hmocks "github.com/stpnv0/TicketHub/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockTicketSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	ticketSvc := hmocks.NewMockTicketSvc(t)

	h := NewHandler(eventSvc, ticketSvc)

	r := ginext.New("test")
	r.POST("/events", h.CreateEvent)
	r.GET("/events", h.ListEvents)
	r.GET("/events/:eventId", h.GetEvent)
	r.POST("/events/:eventId/tickets", h.IssueTicket)
	r.GET("/tickets/:ticketId", h.GetTicket)
	r.PUT("/tickets/:ticketId/use", h.RedeemTicket)

	return eventSvc, ticketSvc, r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	input := domain.CreateEventInput{Name: "Concert", Date: "2026-05-01", Venue: "Hall"}
	event := &domain.Event{
		ID: "e-1", Name: "Concert", Date: "2026-05-01", Venue: "Hall",
		Tickets: []domain.Ticket{}, IsOpen: true,
	}
	eventSvc.EXPECT().CreateEvent(mock.Anything, input).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{Name: "Concert", Date: "2026-05-01", Venue: "Hall"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e-1", resp.ID)
	assert.Equal(t, "Concert", resp.Name)
	assert.True(t, resp.IsOpen)
	assert.Empty(t, resp.Tickets)
}

func TestHandler_CreateEvent_WireFormat(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(&domain.Event{ID: "e-1", IsOpen: true}, nil)

	w := doRequest(r, http.MethodPost, "/events", `{}`)

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "isOpen")
	// nil ticket slice still renders as []
	assert.Equal(t, []any{}, raw["tickets"])
}

func TestHandler_CreateEvent_EmptyBody(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, domain.CreateEventInput{}).
		Return(&domain.Event{ID: "e-1", Tickets: []domain.Ticket{}, IsOpen: true}, nil)

	w := doRequest(r, http.MethodPost, "/events", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/events", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InternalError(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	w := doRequest(r, http.MethodPost, "/events", `{"name":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", w.Body.String())
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	event := &domain.Event{
		ID: "e-1", Name: "Concert", IsOpen: true,
		Tickets: []domain.Ticket{{ID: "t-1", EventID: "e-1", Owner: "bob"}},
	}
	eventSvc.EXPECT().GetEvent(mock.Anything, "e-1").Return(event, nil)

	w := doRequest(r, http.MethodGet, "/events/e-1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, "bob", resp.Tickets[0].Owner)
	assert.Equal(t, "e-1", resp.Tickets[0].EventID)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().GetEvent(mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	w := doRequest(r, http.MethodGet, "/events/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event with id=nope not found", w.Body.String())
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	events := []domain.Event{
		{ID: "e-1", Name: "A", Tickets: []domain.Ticket{}, IsOpen: true},
		{ID: "e-2", Name: "B", Tickets: []domain.Ticket{}, IsOpen: true},
	}
	eventSvc.EXPECT().ListEvents(mock.Anything).Return(events, nil)

	w := doRequest(r, http.MethodGet, "/events", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "e-1", resp[0].ID)
	assert.Equal(t, "e-2", resp[1].ID)
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().ListEvents(mock.Anything).Return(nil, nil)

	w := doRequest(r, http.MethodGet, "/events", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Tickets ---

func TestHandler_IssueTicket_Success(t *testing.T) {
	_, ticketSvc, r := setupRouter(t)

	ticket := &domain.Ticket{ID: "t-1", EventID: "e-1", Owner: "bob"}
	ticketSvc.EXPECT().IssueTicket(mock.Anything, "e-1", "bob").Return(ticket, nil)

	w := doRequest(r, http.MethodPost, "/events/e-1/tickets", `{"owner":"bob"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"t-1","eventId":"e-1","owner":"bob","isUsed":false}`, w.Body.String())
}

func TestHandler_IssueTicket_EventNotFound(t *testing.T) {
	_, ticketSvc, r := setupRouter(t)

	ticketSvc.EXPECT().IssueTicket(mock.Anything, "missing", "bob").Return(nil, domain.ErrEventNotFound)

	w := doRequest(r, http.MethodPost, "/events/missing/tickets", `{"owner":"bob"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event with id=missing not found", w.Body.String())
}

func TestHandler_IssueTicket_PartialWrite(t *testing.T) {
	_, ticketSvc, r := setupRouter(t)

	err := fmt.Errorf("%w: issue ticket t-1: %w", domain.ErrPartialWrite, errors.New("io"))
	ticketSvc.EXPECT().IssueTicket(mock.Anything, "e-1", "").Return(nil, err)

	w := doRequest(r, http.MethodPost, "/events/e-1/tickets", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", w.Body.String())
}

func TestHandler_RedeemTicket_Success(t *testing.T) {
	_, ticketSvc, r := setupRouter(t)

	result := domain.NewRedeemResult("t-1")
	ticketSvc.EXPECT().RedeemTicket(mock.Anything, "t-1").Return(&result, nil)

	w := doRequest(r, http.MethodPut, "/tickets/t-1/use", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Ticket with id=t-1 used successfully"}`, w.Body.String())
}

func TestHandler_RedeemTicket_NotFound(t *testing.T) {
	_, ticketSvc, r := setupRouter(t)

	ticketSvc.EXPECT().RedeemTicket(mock.Anything, "t-404").Return(nil, domain.ErrTicketNotFound)

	w := doRequest(r, http.MethodPut, "/tickets/t-404/use", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket with id=t-404 not found", w.Body.String())
}

func TestHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name       string
		ticket     *domain.Ticket
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			ticket:     &domain.Ticket{ID: "t-1", EventID: "e-1", Owner: "bob", IsUsed: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"t-1","eventId":"e-1","owner":"bob","isUsed":true}`,
		},
		{
			name:       "not found",
			err:        domain.ErrTicketNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "Ticket with id=t-1 not found",
		},
		{
			name:       "store failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ticketSvc, r := setupRouter(t)
			ticketSvc.EXPECT().GetTicket(mock.Anything, "t-1").Return(tt.ticket, tt.err)

			w := doRequest(r, http.MethodGet, "/tickets/t-1", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
