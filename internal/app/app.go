package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/TicketHub/internal/auth"
	"github.com/stpnv0/TicketHub/internal/config"
	"github.com/stpnv0/TicketHub/internal/handler"
	"github.com/stpnv0/TicketHub/internal/middleware"
	"github.com/stpnv0/TicketHub/internal/notification"
	"github.com/stpnv0/TicketHub/internal/router"
	"github.com/stpnv0/TicketHub/internal/scheduler"
	"github.com/stpnv0/TicketHub/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	storage    storage
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TicketHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.storage.close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	policy, err := auth.NewPolicy(a.cfg.Auth.Protected)
	if err != nil {
		return fmt.Errorf("auth policy: %w", err)
	}

	gate := auth.NewIdentityGate(a.storage.owners, a.log)
	for _, o := range a.cfg.Auth.Owners {
		if err = gate.Provision(context.Background(), o.Username, o.Password); err != nil {
			return fmt.Errorf("provision owner %q: %w", o.Username, err)
		}
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	sync := service.NewTicketEventSynchronizer(a.storage.events, a.storage.tickets, a.log)
	eventService := service.NewEventRegistry(a.storage.events, sync, a.log)
	ticketService := service.NewTicketRegistry(sync, n, a.log)

	if a.cfg.Auditor.Enabled {
		a.scheduler = scheduler.New(sync, a.cfg.Auditor.Interval, a.log)
	}

	h := handler.NewHandler(eventService, ticketService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guard{Policy: policy, RequireAuth: middleware.RequireOwner(gate)},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		_ = a.storage.close()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.storage.close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed",
		logger.String("backend", a.cfg.Storage.Backend),
	)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
