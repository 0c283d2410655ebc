package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/config"
	"github.com/BrandonMiller18/nhl-companion-api/internal/database"
	"github.com/BrandonMiller18/nhl-companion-api/internal/handler"
	"github.com/BrandonMiller18/nhl-companion-api/internal/logger"
	"github.com/BrandonMiller18/nhl-companion-api/internal/middleware"
	"github.com/BrandonMiller18/nhl-companion-api/internal/repository"
	"github.com/BrandonMiller18/nhl-companion-api/internal/router"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *migrate {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv, services)

	srv.SetupHTTPServer(router.New(srv, handlers, middlewares))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Msg("NHL Companion API starting up")

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("NHL Companion API shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
