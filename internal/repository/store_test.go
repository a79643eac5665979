package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type ticketStore interface {
	Get(ctx context.Context, key string) (domain.Ticket, bool, error)
	Insert(ctx context.Context, key string, value domain.Ticket) error
	Values(ctx context.Context) ([]domain.Ticket, error)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func runStoreContract(t *testing.T, newStore func(t *testing.T) ticketStore) {
	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)

		_, ok, err := s.Get(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("insert then get", func(t *testing.T) {
		s := newStore(t)
		ticket := domain.Ticket{ID: "t1", EventID: "e1", Owner: "alice"}

		require.NoError(t, s.Insert(context.Background(), ticket.ID, ticket))

		got, ok, err := s.Get(context.Background(), ticket.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, ticket, got)
	})

	t.Run("insert overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Insert(ctx, "t1", domain.Ticket{ID: "t1", EventID: "e1"}))
		require.NoError(t, s.Insert(ctx, "t1", domain.Ticket{ID: "t1", EventID: "e1", IsUsed: true}))

		got, ok, err := s.Get(ctx, "t1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, got.IsUsed)

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("values in key order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, s.Insert(ctx, id, domain.Ticket{ID: id}))
		}

		all, err := s.Values(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "a", all[0].ID)
		assert.Equal(t, "b", all[1].ID)
		assert.Equal(t, "c", all[2].ID)
	})

	t.Run("empty values", func(t *testing.T) {
		s := newStore(t)

		all, err := s.Values(context.Background())

		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("concurrent inserts", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("t%02d", i)
				assert.NoError(t, s.Insert(ctx, id, domain.Ticket{ID: id}))
			}(i)
		}
		wg.Wait()

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 20)
	})
}
