package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/TicketHub/internal/config"
	"github.com/stpnv0/TicketHub/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestApp(t *testing.T, protected ...string) http.Handler {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	cfg := &config.Config{
		Server:  config.ServerConfig{Addr: ":0", ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second},
		Gin:     config.GinConfig{Mode: "test"},
		Storage: config.StorageConfig{Backend: config.BackendMemory},
		Auth: config.AuthConfig{
			Protected: protected,
			Owners:    []config.OwnerSeed{{Username: "owner", Password: "pw"}},
		},
		Auditor: config.AuditorConfig{Enabled: true, Interval: time.Minute},
	}

	a := &App{cfg: cfg, log: log}
	require.NoError(t, a.initStorage())
	require.NoError(t, a.initServices())
	t.Cleanup(func() { _ = a.storage.close() })

	return a.httpServer.Handler
}

type request struct {
	method, path, body string
	username, password string
}

func serve(h http.Handler, r request) *httptest.ResponseRecorder {
	var req *http.Request
	if r.body == "" {
		req = httptest.NewRequest(r.method, r.path, nil)
	} else {
		req = httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
		req.Header.Set("Content-Type", "application/json")
	}
	if r.username != "" {
		req.Header.Set("username", r.username)
		req.Header.Set("password", r.password)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestApp_TicketLifecycle(t *testing.T) {
	h := newTestApp(t, "create_event")

	w := serve(h, request{
		method: http.MethodPost, path: "/events",
		body:     `{"name":"Gala","date":"2025-01-01","venue":"Hall A"}`,
		username: "owner", password: "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var event dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, "Gala", event.Name)
	assert.Empty(t, event.Tickets)
	assert.True(t, event.IsOpen)

	w = serve(h, request{method: http.MethodPost, path: "/events/" + event.ID + "/tickets", body: `{"owner":"alice"}`})
	require.Equal(t, http.StatusOK, w.Code)

	var ticket dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.False(t, ticket.IsUsed)
	assert.Equal(t, event.ID, ticket.EventID)

	w = serve(h, request{method: http.MethodGet, path: "/events/" + event.ID})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.Len(t, event.Tickets, 1)
	assert.Equal(t, ticket, event.Tickets[0])

	w = serve(h, request{method: http.MethodPut, path: "/tickets/" + ticket.ID + "/use"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Ticket with id=`+ticket.ID+` used successfully"}`, w.Body.String())

	w = serve(h, request{method: http.MethodGet, path: "/events/" + event.ID})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.True(t, event.Tickets[0].IsUsed)

	w = serve(h, request{method: http.MethodGet, path: "/tickets/" + ticket.ID})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.True(t, ticket.IsUsed)
}

func TestApp_NotFound(t *testing.T) {
	h := newTestApp(t)

	w := serve(h, request{method: http.MethodGet, path: "/events/missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event with id=missing not found", w.Body.String())

	w = serve(h, request{method: http.MethodPost, path: "/events/missing/tickets", body: `{"owner":"alice"}`})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event with id=missing not found", w.Body.String())

	w = serve(h, request{method: http.MethodPut, path: "/tickets/missing/use"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket with id=missing not found", w.Body.String())
}

func TestApp_ProtectedCreateEvent(t *testing.T) {
	h := newTestApp(t, "create_event")

	tests := []struct {
		name       string
		username   string
		password   string
		wantStatus int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"wrong password", "owner", "nope", http.StatusUnauthorized},
		{"unknown owner", "ghost", "pw", http.StatusUnauthorized},
		{"valid owner", "owner", "pw", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, request{
				method: http.MethodPost, path: "/events", body: `{"name":"x"}`,
				username: tt.username, password: tt.password,
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized", w.Body.String())
			}
		})
	}

	// nothing was created by the rejected requests
	w := serve(h, request{method: http.MethodGet, path: "/events"})
	var events []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 1)
}

func TestApp_InvalidPolicy(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	a := &App{cfg: &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendMemory},
		Auth:    config.AuthConfig{Protected: []string{"delete_everything"}},
	}, log: log}
	require.NoError(t, a.initStorage())

	assert.Error(t, a.initServices())
}
