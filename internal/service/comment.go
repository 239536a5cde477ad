package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/blogfeed/blogfeed/internal/model"
)

// SubmitCommentInput defines input for a comment submission.
// AuthorID is empty for unauthenticated submissions.
type SubmitCommentInput struct {
	AuthorID string
	Name     string
	Email    string
	Website  string
	Message  string
}

// SubmitComment persists a comment for an authenticated author.
// Unauthenticated submissions are dropped without error: the route
// redirects as if successful either way.
func (s *Service) SubmitComment(ctx context.Context, input SubmitCommentInput) error {
	if input.AuthorID == "" {
		s.metrics.IncCommentDropped()
		s.logger.Debug("dropping unauthenticated comment submission")
		return nil
	}

	comment := &model.Comment{
		ID:        ulid.Make().String(),
		AuthorID:  input.AuthorID,
		Name:      input.Name,
		Email:     input.Email,
		Website:   input.Website,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}

	s.metrics.IncCommentCreated()
	s.logger.Info("comment created",
		slog.String("comment_id", comment.ID),
		slog.String("author_id", comment.AuthorID),
	)

	return nil
}
