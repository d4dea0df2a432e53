package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisout "backoffice/internal/adapters/out/redis"
	"backoffice/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the outbox relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := LoadConfig(ctx, *envFile)
			if err != nil {
				return err
			}
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg Config) error {
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	db, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	redisClient, err := redisout.Connect(ctx, redisout.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	root := NewCompositionRoot(cfg, db, redisClient, log)
	defer func() {
		if cErr := root.Close(); cErr != nil {
			log.Warn().Err(cErr).Msg("shutdown")
		}
	}()

	router, err := root.NewRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := root.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
		serverErr <- router.Start("0.0.0.0:" + cfg.HTTPPort)
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
