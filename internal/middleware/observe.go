package middleware

import (
	"net/http"
	"time"

	"rescue-dashboard/internal/platform/logger"
	"rescue-dashboard/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Observe loguea cada request y registra las métricas HTTP.
// La ruta es el patrón de chi (p.ej. /api/records), no el path crudo,
// para no explotar la cardinalidad de labels.
func Observe(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			took := time.Since(start)

			metrics.RecordHTTPRequest(r.Method, route, status, took)

			fields := map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"route":      route,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"took":       took.String(),
			}
			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Debug("http request", fields)
			}
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
