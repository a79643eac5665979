package ports

import (
	"context"

	"github.com/stpnv0/TicketHub/internal/domain"
)

type EventStore interface {
	Get(ctx context.Context, id string) (domain.Event, bool, error)
	Insert(ctx context.Context, id string, e domain.Event) error
	Values(ctx context.Context) ([]domain.Event, error)
}
