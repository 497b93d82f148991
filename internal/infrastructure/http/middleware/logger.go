package middlewares

import (
	"log/slog"
	"net/http"
	ports "taskara-review-service/internal/domain/ports/output"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLoggerMiddleware writes one line per request once the response is complete.
func RequestLoggerMiddleware(log ports.Logger) func(http.Handler) http.Handler {
	log = log.With(slog.String("component", "http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				args := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.String("duration", time.Since(start).String()),
				}
				if ww.Status() >= http.StatusInternalServerError {
					log.Warn("request completed", args...)
					return
				}
				log.Info("request completed", args...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
