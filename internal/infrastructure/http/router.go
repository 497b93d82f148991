package http

import (
	"net/http"
	input "taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/internal/infrastructure/config"
	"taskara-review-service/internal/infrastructure/http/handlers/pendingreviewer"
	"taskara-review-service/internal/infrastructure/http/handlers/requirement"
	middlewares "taskara-review-service/internal/infrastructure/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router *chi.Mux
	log    ports.Logger

	pendingService     input.PendingReviewerInputPort
	requirementService input.ReviewRequirementInputPort
}

func NewRouter(log ports.Logger, pendingSvc input.PendingReviewerInputPort, requirementSvc input.ReviewRequirementInputPort) *Router {
	return &Router{
		router:             chi.NewRouter(),
		log:                log,
		pendingService:     pendingSvc,
		requirementService: requirementSvc,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		r.router.Use(middlewares.NewMetrics(reg).Middleware)
		r.router.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.router.Group(func(api chi.Router) {
		api.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
		api.Mount("/tasks", r.setupTaskRoutes())
		api.Mount("/pending_reviews", r.setupPendingReviewRoutes())
		api.Mount("/review_requirements", r.setupRequirementRoutes())
	})
}

func (r *Router) setupTaskRoutes() http.Handler {
	h := pendingreviewer.NewPendingReviewerHandler(r.pendingService, r.requirementService, r.log)
	sub := chi.NewRouter()
	sub.Route("/{task_id}", func(task chi.Router) {
		task.Get("/pending_reviewers", h.GetPendingReviewers)
		task.Post("/pending_reviewers", h.AddPendingReviewer)
		task.Delete("/pending_reviewers", h.RemovePendingReviewer)
		task.Post("/pending_reviewers/assign", h.Assign)
		task.Get("/review_status", h.ReviewStatus)
	})
	return sub
}

func (r *Router) setupPendingReviewRoutes() http.Handler {
	h := pendingreviewer.NewPendingReviewerHandler(r.pendingService, r.requirementService, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.PendingReviews)
	return sub
}

func (r *Router) setupRequirementRoutes() http.Handler {
	h := requirement.NewRequirementHandler(r.requirementService, r.log)
	sub := chi.NewRouter()
	sub.Post("/", h.CreateRequirement)
	sub.Get("/", h.FindRequirements)
	sub.Get("/{id}", h.GetRequirement)
	sub.Put("/{id}", h.SaveRequirement)
	sub.Delete("/{id}", h.DeleteRequirement)
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
