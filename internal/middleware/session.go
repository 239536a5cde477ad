package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogfeed/blogfeed/internal/auth"
	"github.com/blogfeed/blogfeed/internal/cache"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_id"

// SessionReader resolves a session token to a user ID.
type SessionReader interface {
	Get(ctx context.Context, token string) (string, error)
}

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Logger   *slog.Logger
	Sessions SessionReader
}

// LoadSession resolves the session cookie and injects the authenticated
// user ID into the request context. Requests without a valid session
// proceed anonymously; gating happens in RequireLogin.
func LoadSession(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := cfg.Sessions.Get(r.Context(), c.Value)
			if err != nil {
				if !errors.Is(err, cache.ErrNoSession) {
					cfg.Logger.Error("session lookup failed",
						slog.String("error", err.Error()),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin redirects anonymous requests to the login page.
// This is the uniform unauthenticated-access policy for protected
// routes: a redirect, never an error status.
func RequireLogin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.UserIDFrom(r.Context()); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
