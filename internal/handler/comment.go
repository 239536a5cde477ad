package handler

import (
	"log/slog"
	"net/http"

	"github.com/blogfeed/blogfeed/internal/auth"
	"github.com/blogfeed/blogfeed/internal/service"
)

// Comment handles a comment submission. Unauthenticated submissions are
// dropped by the service; the redirect to the feed happens regardless,
// and storage failures are logged server-side only.
// POST /comment
func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFrom(r.Context())

	input := service.SubmitCommentInput{
		AuthorID: userID,
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Website:  r.FormValue("website"),
		Message:  r.FormValue("message"),
	}

	if err := h.svc.SubmitComment(r.Context(), input); err != nil {
		h.logger.Error("comment submission failed",
			slog.String("author_id", userID),
			slog.String("error", err.Error()),
		)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
