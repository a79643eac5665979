package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TicketHub/internal/domain"
)

// Audit compares the ticket store with every embedded ticket list and
// returns each disagreement it finds. An empty result means both views match.
func (s *TicketEventSynchronizer) Audit(ctx context.Context) ([]domain.Inconsistency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.events.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	tickets, err := s.tickets.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	embedded := make(map[string]map[string]domain.Ticket, len(events))
	var found []domain.Inconsistency

	for _, e := range events {
		entries := make(map[string]domain.Ticket, len(e.Tickets))
		for _, t := range e.Tickets {
			if _, dup := entries[t.ID]; dup {
				found = append(found, domain.Inconsistency{
					Kind: domain.InconsistencyDuplicateEntry, EventID: e.ID, TicketID: t.ID,
				})
				continue
			}
			entries[t.ID] = t
		}
		embedded[e.ID] = entries
	}

	stored := make(map[string]domain.Ticket, len(tickets))
	for _, t := range tickets {
		stored[t.ID] = t

		entries, ok := embedded[t.EventID]
		if !ok {
			found = append(found, domain.Inconsistency{
				Kind: domain.InconsistencyDanglingEvent, EventID: t.EventID, TicketID: t.ID,
			})
			continue
		}

		copyInEvent, ok := entries[t.ID]
		switch {
		case !ok:
			found = append(found, domain.Inconsistency{
				Kind: domain.InconsistencyMissingInEvent, EventID: t.EventID, TicketID: t.ID,
			})
		case copyInEvent != t:
			found = append(found, domain.Inconsistency{
				Kind: domain.InconsistencyFieldMismatch, EventID: t.EventID, TicketID: t.ID,
			})
		}
	}

	for _, e := range events {
		for _, t := range e.Tickets {
			record, ok := stored[t.ID]
			switch {
			case !ok:
				found = append(found, domain.Inconsistency{
					Kind: domain.InconsistencyMissingInStore, EventID: e.ID, TicketID: t.ID,
				})
			case record.EventID != e.ID:
				// listed under the wrong event
				found = append(found, domain.Inconsistency{
					Kind: domain.InconsistencyFieldMismatch, EventID: e.ID, TicketID: t.ID,
				})
			}
		}
	}

	return found, nil
}
