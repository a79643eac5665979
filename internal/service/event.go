package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type eventReader interface {
	Event(ctx context.Context, id string) (domain.Event, error)
	Events(ctx context.Context) ([]domain.Event, error)
}

type EventRegistry struct {
	repo   ports.EventStore
	reader eventReader
	newID  func() string
	logger logger.Logger
}

func NewEventRegistry(repo ports.EventStore, reader eventReader, logger logger.Logger) *EventRegistry {
	return &EventRegistry{
		repo:   repo,
		reader: reader,
		newID:  func() string { return uuid.New().String() },
		logger: logger,
	}
}

// CreateEvent stores a new open event with an empty ticket list. Fields are
// taken as given; two events may share name, date and venue.
func (s *EventRegistry) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:      s.newID(),
		Name:    input.Name,
		Date:    input.Date,
		Venue:   input.Venue,
		Tickets: []domain.Ticket{},
		IsOpen:  true,
	}

	if err := s.repo.Insert(ctx, event.ID, *event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("name", event.Name),
	)

	return event, nil
}

func (s *EventRegistry) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.reader.Events(ctx)
}

func (s *EventRegistry) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.reader.Event(ctx, id)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
