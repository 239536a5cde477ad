package handler

import (
	"log/slog"
	"net/http"

	"github.com/blogfeed/blogfeed/internal/auth"
)

// Index renders the feed.
// GET / and GET /index
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderFeed(w, r, "index.html")
}

// Home renders the feed under the alternate home view.
// GET /home
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderFeed(w, r, "home.html")
}

func (h *Handler) renderFeed(w http.ResponseWriter, r *http.Request, page string) {
	userID, _ := auth.UserIDFrom(r.Context())

	view, err := h.svc.Feed(r.Context(), userID)
	if err != nil {
		// A data-layer failure here is treated the same as not being
		// authenticated: back to the login page.
		h.logger.Error("feed load failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.render(w, page, pageData{User: view.User, Comments: view.Comments})
}
