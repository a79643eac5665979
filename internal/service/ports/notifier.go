package ports

import (
	"context"

	"github.com/stpnv0/TicketHub/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketIssued(ctx context.Context, ticket domain.Ticket)
	NotifyTicketRedeemed(ctx context.Context, ticket domain.Ticket)
}
