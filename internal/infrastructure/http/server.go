package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	input "taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/internal/infrastructure/config"
	"time"
)

type Server struct {
	address string
	log     ports.Logger
	router  *Router
	server  *http.Server

	pendingService     input.PendingReviewerInputPort
	requirementService input.ReviewRequirementInputPort
}

func NewServer(address string, log ports.Logger, pendingSvc input.PendingReviewerInputPort, requirementSvc input.ReviewRequirementInputPort) *Server {
	return &Server{
		address:            address,
		log:                log,
		pendingService:     pendingSvc,
		requirementService: requirementSvc,
	}
}

// Run blocks until the server stops. A stop caused by Shutdown is not an error.
func (s *Server) Run(cfg *config.Config) error {
	s.router = NewRouter(s.log, s.pendingService, s.requirementService)
	s.router.Setup(cfg)

	s.server = &http.Server{
		Addr:         s.address,
		Handler:      s.router.GetRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPServer.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("Starting server", slog.String("address", s.address))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
