package repository

import (
	"context"
	"testing"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBadger(t *testing.T) *BadgerDB {
	t.Helper()
	db, err := OpenBadger(t.TempDir(), newTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestBadgerStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) ticketStore {
		return NewBadgerStore[domain.Ticket](openTestBadger(t), "tickets")
	})
}

func TestBadgerStore_BucketsAreIsolated(t *testing.T) {
	db := openTestBadger(t)
	ctx := context.Background()

	events := NewBadgerStore[domain.Event](db, "events")
	tickets := NewBadgerStore[domain.Ticket](db, "tickets")

	require.NoError(t, events.Insert(ctx, "x", domain.Event{ID: "x", Name: "Gala", Tickets: []domain.Ticket{}, IsOpen: true}))
	require.NoError(t, tickets.Insert(ctx, "x", domain.Ticket{ID: "x", EventID: "x"}))

	allEvents, err := events.Values(ctx)
	require.NoError(t, err)
	require.Len(t, allEvents, 1)
	assert.Equal(t, "Gala", allEvents[0].Name)
	assert.True(t, allEvents[0].IsOpen)

	allTickets, err := tickets.Values(ctx)
	require.NoError(t, err)
	assert.Len(t, allTickets, 1)
}

func TestBadgerStore_CancelledContext(t *testing.T) {
	s := NewBadgerStore[domain.Ticket](openTestBadger(t), "tickets")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Insert(ctx, "t1", domain.Ticket{ID: "t1"}), context.Canceled)
	_, _, err := s.Get(ctx, "t1")
	assert.ErrorIs(t, err, context.Canceled)
}
