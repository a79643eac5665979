package service

import (
	"context"
	"testing"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_CleanState(t *testing.T) {
	s, stores := newMemSynchronizer(t)
	seedEvent(t, stores, "e1")
	ctx := context.Background()

	tk, err := s.IssueTicket(ctx, "e1", "alice")
	require.NoError(t, err)
	_, err = s.RedeemTicket(ctx, tk.ID)
	require.NoError(t, err)

	found, err := s.Audit(ctx)

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAudit_ReportsEveryKind(t *testing.T) {
	s, stores := newMemSynchronizer(t)
	ctx := context.Background()

	tMissingInEvent := domain.Ticket{ID: "t1", EventID: "e1", Owner: "a"}
	tMismatch := domain.Ticket{ID: "t2", EventID: "e1", Owner: "b", IsUsed: true}
	tDangling := domain.Ticket{ID: "t3", EventID: "gone", Owner: "c"}
	tOrphan := domain.Ticket{ID: "t4", EventID: "e1", Owner: "d"}
	tDuplicated := domain.Ticket{ID: "t5", EventID: "e2", Owner: "e"}

	for _, tk := range []domain.Ticket{tMissingInEvent, tMismatch, tDangling, tDuplicated} {
		require.NoError(t, stores.tickets.Insert(ctx, tk.ID, tk))
	}

	staleCopy := tMismatch
	staleCopy.IsUsed = false
	require.NoError(t, stores.events.Insert(ctx, "e1", domain.Event{
		ID: "e1", Tickets: []domain.Ticket{staleCopy, tOrphan}, IsOpen: true,
	}))
	require.NoError(t, stores.events.Insert(ctx, "e2", domain.Event{
		ID: "e2", Tickets: []domain.Ticket{tDuplicated, tDuplicated}, IsOpen: true,
	}))

	found, err := s.Audit(ctx)

	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Inconsistency{
		{Kind: domain.InconsistencyMissingInEvent, EventID: "e1", TicketID: "t1"},
		{Kind: domain.InconsistencyFieldMismatch, EventID: "e1", TicketID: "t2"},
		{Kind: domain.InconsistencyDanglingEvent, EventID: "gone", TicketID: "t3"},
		{Kind: domain.InconsistencyMissingInStore, EventID: "e1", TicketID: "t4"},
		{Kind: domain.InconsistencyDuplicateEntry, EventID: "e2", TicketID: "t5"},
	}, found)
}

func TestAudit_TicketListedUnderWrongEvent(t *testing.T) {
	s, stores := newMemSynchronizer(t)
	ctx := context.Background()

	tk := domain.Ticket{ID: "t1", EventID: "e1"}
	require.NoError(t, stores.tickets.Insert(ctx, tk.ID, tk))
	require.NoError(t, stores.events.Insert(ctx, "e1", domain.Event{ID: "e1", Tickets: []domain.Ticket{tk}}))
	require.NoError(t, stores.events.Insert(ctx, "e2", domain.Event{ID: "e2", Tickets: []domain.Ticket{tk}}))

	found, err := s.Audit(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.Inconsistency{
		{Kind: domain.InconsistencyFieldMismatch, EventID: "e2", TicketID: "t1"},
	}, found)
}
