package middleware

import (
	"net/http"
	"runtime/debug"

	"rescue-dashboard/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover atrapa panics de los handlers, los loguea con stack y responde 500 JSON.
// http.ErrAbortHandler se re-lanza para que net/http corte la conexión.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal error"}`))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
