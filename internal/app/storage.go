package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/TicketHub/internal/config"
	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/repository"
	"github.com/stpnv0/TicketHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

const (
	ownersBucket  = "owners"
	eventsBucket  = "events"
	ticketsBucket = "tickets"
)

type storage struct {
	owners  ports.OwnerStore
	events  ports.EventStore
	tickets ports.TicketStore
	close   func() error
}

func (a *App) initStorage() error {
	var (
		st  storage
		err error
	)

	switch a.cfg.Storage.Backend {
	case config.BackendBadger:
		st, err = a.openBadger()
	case config.BackendPostgres:
		st, err = a.openPostgres()
	default:
		st = storage{
			owners:  repository.NewMemoryStore[string, domain.Owner](),
			events:  repository.NewMemoryStore[string, domain.Event](),
			tickets: repository.NewMemoryStore[string, domain.Ticket](),
			close:   func() error { return nil },
		}
	}
	if err != nil {
		return err
	}

	a.storage = st
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage ready",
		logger.String("backend", a.cfg.Storage.Backend),
	)

	return nil
}

func (a *App) openBadger() (storage, error) {
	db, err := repository.OpenBadger(a.cfg.Badger.Dir, a.log)
	if err != nil {
		return storage{}, fmt.Errorf("open badger: %w", err)
	}

	return storage{
		owners:  repository.NewBadgerStore[domain.Owner](db, ownersBucket),
		events:  repository.NewBadgerStore[domain.Event](db, eventsBucket),
		tickets: repository.NewBadgerStore[domain.Ticket](db, ticketsBucket),
		close:   db.Close,
	}, nil
}

func (a *App) openPostgres() (storage, error) {
	if err := a.runMigrations(); err != nil {
		return storage{}, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return storage{}, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return storage{}, fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return storage{
		owners:  repository.NewPostgresStore[domain.Owner](db, ownersBucket),
		events:  repository.NewPostgresStore[domain.Event](db, eventsBucket),
		tickets: repository.NewPostgresStore[domain.Ticket](db, ticketsBucket),
		close:   db.Master.Close,
	}, nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
