package service

import (
	"context"
	"fmt"

	"github.com/blogfeed/blogfeed/internal/model"
)

// FeedComment is a comment with its author reference resolved.
// Author is nil when the referenced user no longer resolves.
type FeedComment struct {
	*model.Comment
	Author *model.User
}

// FeedView is the data handed to the feed templates.
type FeedView struct {
	User     *model.User
	Comments []FeedComment
}

// Feed loads the authenticated user and all comments with their authors
// resolved. The caller is expected to have verified userID already.
func (s *Service) Feed(ctx context.Context, userID string) (*FeedView, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feed: load user: %w", err)
	}

	comments, err := s.comments.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed: load comments: %w", err)
	}

	// Resolve authors in one bulk read.
	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if c.AuthorID != "" && !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			ids = append(ids, c.AuthorID)
		}
	}

	authors, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("feed: load authors: %w", err)
	}

	view := &FeedView{
		User:     user,
		Comments: make([]FeedComment, 0, len(comments)),
	}
	for _, c := range comments {
		view.Comments = append(view.Comments, FeedComment{
			Comment: c,
			Author:  authors[c.AuthorID],
		})
	}

	return view, nil
}
