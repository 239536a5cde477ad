// Package handler provides HTTP request handlers for the web pages.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/blogfeed/blogfeed/internal/middleware"
	"github.com/blogfeed/blogfeed/internal/model"
	"github.com/blogfeed/blogfeed/internal/service"
)

// Handler wraps application dependencies for the page handlers.
type Handler struct {
	svc        *service.Service
	renderer   *Renderer
	logger     *slog.Logger
	sessionTTL time.Duration
}

// New creates a new Handler instance.
func New(svc *service.Service, renderer *Renderer, logger *slog.Logger, sessionTTL time.Duration) *Handler {
	return &Handler{
		svc:        svc,
		renderer:   renderer,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

// pageData is the data handed to every page template.
type pageData struct {
	User         *model.User
	Comments     []service.FeedComment
	ErrorMessage string
}

// render executes a page template, logging failures server-side only.
func (h *Handler) render(w http.ResponseWriter, page string, data pageData) {
	if err := h.renderer.Render(w, page, data); err != nil {
		h.logger.Error("template render failed",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// setSessionCookie binds the session token to the client.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})
}

// clearSessionCookie expires the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
