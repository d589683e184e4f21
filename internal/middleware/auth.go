package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/api/httpx"
	"github.com/coursehub/coursehub-backend/internal/auth"
	"github.com/coursehub/coursehub-backend/internal/metrics"
	"github.com/coursehub/coursehub-backend/internal/models"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
)

type ctxKey string

const ctxUserKey ctxKey = "user"

// CurrentUser returns the authenticated identity attached by Authenticate.
func CurrentUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ctxUserKey).(models.User)
	return u, ok
}

type AuthMiddleware struct {
	Users repo.Users
}

func NewAuthMiddleware(users repo.Users) *AuthMiddleware {
	return &AuthMiddleware{Users: users}
}

// deny finalizes the request with the one generic response shared by every
// failure branch. Which branch fired is visible only in logs and metrics;
// the caller must not be able to tell unknown email from wrong password.
func (m *AuthMiddleware) deny(w http.ResponseWriter, reason, email string) {
	slog.Warn("authentication failed", "reason", reason, "email", email)
	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	httpx.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
}

// Authenticate verifies HTTP Basic credentials on every request; there are
// no sessions or tokens.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			m.deny(w, "missing_credentials", "")
			return
		}

		u, err := m.Users.GetByEmail(email)
		if errors.Is(err, repo.ErrNotFound) {
			m.deny(w, "unknown_identity", email)
			return
		}
		if err != nil {
			slog.Error("user lookup", "err", err)
			httpx.WriteServerError(w, "internal error")
			return
		}

		if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
			m.deny(w, "bad_credential", email)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser is a test hook for building contexts that look authenticated.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, ctxUserKey, u)
}
