package service

import (
	"context"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ticketSynchronizer interface {
	IssueTicket(ctx context.Context, eventID, owner string) (domain.Ticket, error)
	RedeemTicket(ctx context.Context, ticketID string) (domain.RedeemResult, error)
	Ticket(ctx context.Context, id string) (domain.Ticket, error)
}

type TicketRegistry struct {
	sync     ticketSynchronizer
	notifier ports.TicketNotifier
	logger   logger.Logger
}

func NewTicketRegistry(sync ticketSynchronizer, notifier ports.TicketNotifier, logger logger.Logger) *TicketRegistry {
	return &TicketRegistry{
		sync:     sync,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *TicketRegistry) IssueTicket(ctx context.Context, eventID, owner string) (*domain.Ticket, error) {
	ticket, err := s.sync.IssueTicket(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticket issued",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", eventID),
		logger.String("owner", owner),
	)

	go s.notifier.NotifyTicketIssued(context.WithoutCancel(ctx), ticket)

	return &ticket, nil
}

func (s *TicketRegistry) RedeemTicket(ctx context.Context, ticketID string) (*domain.RedeemResult, error) {
	res, err := s.sync.RedeemTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticket redeemed", logger.String("ticket_id", ticketID))

	ticket, err := s.sync.Ticket(ctx, ticketID)
	if err != nil {
		s.logger.Error("failed to get ticket for notification",
			logger.String("ticket_id", ticketID),
			logger.String("error", err.Error()),
		)
		return &res, nil
	}

	go s.notifier.NotifyTicketRedeemed(context.WithoutCancel(ctx), ticket)

	return &res, nil
}

func (s *TicketRegistry) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.sync.Ticket(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
