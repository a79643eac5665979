package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// TicketEventSynchronizer keeps the ticket store and every event's embedded
// ticket list identical. Paired writes run under one exclusive lock; reads of
// either view take the shared side, so nobody observes the gap between them.
type TicketEventSynchronizer struct {
	mu       sync.RWMutex
	events   ports.EventStore
	tickets  ports.TicketStore
	newID    func() string
	strategy retry.Strategy
	logger   logger.Logger
}

type SynchronizerOption func(*TicketEventSynchronizer)

// WithIDGenerator replaces uuid.New for ticket ids.
func WithIDGenerator(fn func() string) SynchronizerOption {
	return func(s *TicketEventSynchronizer) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithEventWriteRetry sets how the event half of a paired write is retried.
func WithEventWriteRetry(strategy retry.Strategy) SynchronizerOption {
	return func(s *TicketEventSynchronizer) {
		if strategy.Attempts > 0 {
			s.strategy = strategy
		}
	}
}

func NewTicketEventSynchronizer(
	events ports.EventStore,
	tickets ports.TicketStore,
	logger logger.Logger,
	opts ...SynchronizerOption,
) *TicketEventSynchronizer {
	s := &TicketEventSynchronizer{
		events:  events,
		tickets: tickets,
		newID:   func() string { return uuid.New().String() },
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    50 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TicketEventSynchronizer) IssueTicket(ctx context.Context, eventID, owner string) (domain.Ticket, error) {
	// not-found exits before taking the lock
	if _, ok, err := s.events.Get(ctx, eventID); err != nil {
		return domain.Ticket{}, fmt.Errorf("get event: %w", err)
	} else if !ok {
		return domain.Ticket{}, domain.ErrEventNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// re-read under the lock so a concurrent append is not lost
	event, ok, err := s.events.Get(ctx, eventID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("get event: %w", err)
	}
	if !ok {
		return domain.Ticket{}, domain.ErrEventNotFound
	}

	ticket := domain.Ticket{
		ID:      s.newID(),
		EventID: eventID,
		Owner:   owner,
		IsUsed:  false,
	}

	if err = s.tickets.Insert(ctx, ticket.ID, ticket); err != nil {
		return domain.Ticket{}, fmt.Errorf("insert ticket: %w", err)
	}

	if err = s.writeEvent(ctx, event.WithTicket(ticket)); err != nil {
		s.logger.Error("ticket stored but event not updated",
			logger.String("ticket_id", ticket.ID),
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return domain.Ticket{}, fmt.Errorf("%w: issue ticket %s: %w", domain.ErrPartialWrite, ticket.ID, err)
	}

	return ticket, nil
}

// RedeemTicket marks the ticket used. Redeeming an already used ticket
// succeeds and leaves both views unchanged. A ticket whose event no longer
// exists is still marked used in the ticket store.
func (s *TicketEventSynchronizer) RedeemTicket(ctx context.Context, ticketID string) (domain.RedeemResult, error) {
	if _, ok, err := s.tickets.Get(ctx, ticketID); err != nil {
		return domain.RedeemResult{}, fmt.Errorf("get ticket: %w", err)
	} else if !ok {
		return domain.RedeemResult{}, domain.ErrTicketNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return domain.RedeemResult{}, fmt.Errorf("get ticket: %w", err)
	}
	if !ok {
		return domain.RedeemResult{}, domain.ErrTicketNotFound
	}

	ticket.IsUsed = true
	if err = s.tickets.Insert(ctx, ticketID, ticket); err != nil {
		return domain.RedeemResult{}, fmt.Errorf("update ticket: %w", err)
	}

	event, ok, err := s.events.Get(ctx, ticket.EventID)
	if err != nil {
		return domain.RedeemResult{}, fmt.Errorf("%w: redeem ticket %s: get event: %w", domain.ErrPartialWrite, ticketID, err)
	}
	if !ok {
		s.logger.Warn("redeemed ticket references missing event",
			logger.String("ticket_id", ticketID),
			logger.String("event_id", ticket.EventID),
		)
		return domain.NewRedeemResult(ticketID), nil
	}

	if err = s.writeEvent(ctx, event.WithReplacedTicket(ticket)); err != nil {
		s.logger.Error("ticket redeemed but event not updated",
			logger.String("ticket_id", ticketID),
			logger.String("event_id", ticket.EventID),
			logger.String("error", err.Error()),
		)
		return domain.RedeemResult{}, fmt.Errorf("%w: redeem ticket %s: %w", domain.ErrPartialWrite, ticketID, err)
	}

	return domain.NewRedeemResult(ticketID), nil
}

func (s *TicketEventSynchronizer) writeEvent(ctx context.Context, event domain.Event) error {
	return retry.Do(func() error {
		return s.events.Insert(ctx, event.ID, event)
	}, s.strategy)
}

func (s *TicketEventSynchronizer) Event(ctx context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok, err := s.events.Get(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *TicketEventSynchronizer) Events(ctx context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.events.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *TicketEventSynchronizer) Ticket(ctx context.Context, id string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok, err := s.tickets.Get(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	if !ok {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	return ticket, nil
}
