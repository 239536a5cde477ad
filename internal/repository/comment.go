package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/blogfeed/blogfeed/internal/model"
)

// CreateComment inserts a new comment.
func (r *Repository) CreateComment(ctx context.Context, comment *model.Comment) error {
	_, err := r.comments().InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments returns all comments in the store's native retrieval
// order, which is insertion order for this collection.
func (r *Repository) ListComments(ctx context.Context) ([]*model.Comment, error) {
	cursor, err := r.comments().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*model.Comment
	for cursor.Next(ctx) {
		var comment model.Comment
		if err := cursor.Decode(&comment); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
