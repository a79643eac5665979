package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type consistencyChecker interface {
	Audit(ctx context.Context) ([]domain.Inconsistency, error)
}

// Scheduler periodically compares the ticket store with the tickets embedded
// in events and logs every disagreement.
type Scheduler struct {
	checker  consistencyChecker
	interval time.Duration
	logger   logger.Logger
}

func New(
	checker consistencyChecker,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("consistency auditor started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("consistency auditor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) int {
	found, err := s.checker.Audit(ctx)
	if err != nil {
		s.logger.Error("consistency audit failed",
			logger.String("error", err.Error()),
		)
		return 0
	}

	if len(found) == 0 {
		s.logger.Debug("consistency audit passed")
		return 0
	}

	for _, inc := range found {
		s.logger.Error("ticket views diverged",
			logger.String("kind", string(inc.Kind)),
			logger.String("event_id", inc.EventID),
			logger.String("ticket_id", inc.TicketID),
		)
	}
	s.logger.Warn("consistency audit found problems",
		logger.Int("count", len(found)),
	)

	return len(found)
}
