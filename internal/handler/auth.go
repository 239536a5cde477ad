package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogfeed/blogfeed/internal/middleware"
	"github.com/blogfeed/blogfeed/internal/service"
)

// User-visible auth messages. Internal error detail never reaches the
// client.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgLoginError         = "An error occurred during login"
	msgUsernameRequired   = "Username is required"
	msgDuplicateUsername  = "Username already exists. Choose a different username."
)

// LoginForm renders the login page.
// GET /login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", pageData{})
}

// Login runs the login flow.
// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	result, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrLookupExhausted):
			// Lookup exhaustion renders like bad credentials.
			h.logger.Warn("login failed",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
			h.render(w, "login.html", pageData{ErrorMessage: msgInvalidCredentials})
		default:
			h.logger.Error("error during login",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
			h.render(w, "login.html", pageData{ErrorMessage: msgLoginError})
		}
		return
	}

	h.setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/index", http.StatusSeeOther)
}

// SignupForm renders the signup page.
// GET /signup
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signup.html", pageData{})
}

// Signup runs the signup flow.
// POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	result, err := h.svc.Signup(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			h.render(w, "signup.html", pageData{ErrorMessage: msgUsernameRequired})
		case errors.Is(err, service.ErrDuplicateUsername):
			h.render(w, "signup.html", pageData{ErrorMessage: msgDuplicateUsername})
		default:
			// Storage failures go back to the form without a message,
			// unlike the duplicate case.
			h.logger.Error("error during signup",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		}
		return
	}

	h.setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the current session.
// GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.CookieName); err == nil && c.Value != "" {
		if err := h.svc.Logout(r.Context(), c.Value); err != nil {
			// Log and write no response; the connection falls to the
			// server's write timeout.
			h.logger.Error("error during logout", slog.String("error", err.Error()))
			return
		}
		h.clearSessionCookie(w)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
