package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	pendingreviewerapp "taskara-review-service/internal/application/pendingreviewer"
	requirementapp "taskara-review-service/internal/application/requirement"
	"taskara-review-service/internal/infrastructure/config"
	httpserver "taskara-review-service/internal/infrastructure/http"
	"taskara-review-service/internal/infrastructure/logger"
	"taskara-review-service/internal/infrastructure/reviewerselector"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			uow, closeStorage, err := openStorage(ctx, cfg, log)
			if err != nil {
				log.Error("Failed to open storage", slog.String("error", err.Error()))
				return err
			}
			defer closeStorage()

			selector := reviewerselector.NewRandomReviewerSelector()
			pendingService := pendingreviewerapp.NewService(uow, selector, log)
			requirementService := requirementapp.NewService(uow, log)

			addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
			server := httpserver.NewServer(addr, log, pendingService, requirementService)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Run(cfg)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("HTTP server error", slog.String("error", err.Error()))
				}
				return err
			case <-ctx.Done():
			}

			log.Info("Shutting down HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
			}
			<-errCh
			log.Info("Server exited")
			return nil
		},
	}
}
