// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/blogfeed/blogfeed/internal/metrics"
	"github.com/blogfeed/blogfeed/internal/model"
)

// Service errors.
var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLookupExhausted    = errors.New("user lookup retries exhausted")
)

const (
	// lookupAttempts bounds the retried user lookup during login.
	// Signup and comment writes are not retried.
	lookupAttempts = 3
	// lookupDelay is the pause between login lookup attempts.
	lookupDelay = time.Second
)

// UserStore is the credential store the service reads and writes.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*model.User, error)
}

// CommentStore is the comment store the service reads and writes.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context) ([]*model.Comment, error)
}

// SessionStore binds opaque tokens to user IDs.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}

// Service implements the auth flow, the feed and comment submission.
type Service struct {
	users    UserStore
	comments CommentStore
	sessions SessionStore
	metrics  metrics.Recorder
	logger   *slog.Logger

	lookupAttempts int
	lookupDelay    time.Duration
}

// New creates a Service.
func New(users UserStore, comments CommentStore, sessions SessionStore, recorder metrics.Recorder, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Service{
		users:          users,
		comments:       comments,
		sessions:       sessions,
		metrics:        recorder,
		logger:         logger,
		lookupAttempts: lookupAttempts,
		lookupDelay:    lookupDelay,
	}
}
