package ports

import (
	"context"

	"github.com/stpnv0/TicketHub/internal/domain"
)

type OwnerStore interface {
	Get(ctx context.Context, username string) (domain.Owner, bool, error)
	Insert(ctx context.Context, username string, o domain.Owner) error
	Values(ctx context.Context) ([]domain.Owner, error)
}
