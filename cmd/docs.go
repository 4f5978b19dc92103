package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"contracts/internal/api"
	"contracts/internal/config"
	"contracts/pkg/contract"
	"contracts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the docs server in the background. The returned channel
// receives the listen error, if any, and is closed when the server stops.
func setupServer(ctx context.Context, cfg *config.Config) (func(ctx context.Context), <-chan error, error) {
	server, err := api.NewServer(api.Deps{
		Checker: contract.New(),
		OTP:     cfg.OTPConfig(),
	}, api.NewOptions(cfg))
	if err != nil {
		return nil, nil, err
	}

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "could not start webserver", zap.Error(err))
			errc <- fmt.Errorf("could not start webserver: %w", err)
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, errc, nil
}

func docsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Serves the API docs and the contract check endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver, errc, err := setupServer(ctx, a.cfg)
			if err != nil {
				return err
			}

			// wait for interrupt or a listen failure
			select {
			case <-ctx.Done():
			case err := <-errc:
				return err
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			return nil
		},
	}
}
