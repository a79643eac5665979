package ports

import (
	"context"

	"github.com/stpnv0/TicketHub/internal/domain"
)

type TicketStore interface {
	Get(ctx context.Context, id string) (domain.Ticket, bool, error)
	Insert(ctx context.Context, id string, t domain.Ticket) error
	Values(ctx context.Context) ([]domain.Ticket, error)
}
