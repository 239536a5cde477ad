package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogfeed/blogfeed/internal/middleware"
	"github.com/blogfeed/blogfeed/web"
)

// Router assembles the chi router with middleware, the page routes and
// the two static asset trees.
func Router(h *Handler, health *HealthHandler, sess middleware.SessionConfig, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.LoadSession(sess))

	// Health endpoints (no auth required)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Feed pages require a session; anonymous requests bounce to /login.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin())
		r.Get("/", h.Index)
		r.Get("/index", h.Index)
		r.Get("/home", h.Home)
	})

	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/signup", h.SignupForm)
	r.Post("/signup", h.Signup)
	r.Post("/comment", h.Comment)
	r.Get("/logout", h.Logout)

	// Static asset trees at fixed routes.
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(web.PublicFS()))))
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(web.AssetsFS()))))

	return r
}
