package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/api/httpx"
)

// Recover is the global error boundary: anything a handler did not handle
// surfaces as a 500 with the error's message and an empty error object.
// The stack is logged only when the global diagnostic flag is on.
func Recover(logErrors bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logErrors {
						slog.Error("unhandled error", "err", rec, "path", r.URL.Path)
					}
					httpx.WriteServerError(w, fmt.Sprint(rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
