// Package repository provides access to the document backing store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Common errors for repository operations.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameExists = errors.New("username already exists")
)

const (
	usersCollection    = "users"
	commentsCollection = "comments"

	// connectRetryDelay is the pause between connection attempts at startup.
	// The bootstrap loop never gives up; store operations simply fail until
	// the database is reachable.
	connectRetryDelay = 5 * time.Second

	pingTimeout = 5 * time.Second
)

// Repository provides MongoDB access methods for users and comments.
type Repository struct {
	client   *mongo.Client
	database string
	logger   *slog.Logger
}

// New creates a Repository and starts the connection bootstrap in the
// background. The HTTP server does not wait for the store: requests made
// before a successful connection fail their store operations with the
// normal runtime failure modes.
func New(ctx context.Context, mongoURL, database string, logger *slog.Logger) (*Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	r := &Repository{
		client:   client,
		database: database,
		logger:   logger,
	}

	go r.connectWithRetry(context.Background())

	return r, nil
}

// connectWithRetry pings the store every connectRetryDelay until it is
// reachable, then ensures the indexes the write paths depend on.
func (r *Repository) connectWithRetry(ctx context.Context) {
	for {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := r.client.Ping(pctx, nil)
		cancel()

		if err == nil {
			break
		}

		r.logger.Error("database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", connectRetryDelay),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(connectRetryDelay):
		}
	}

	r.logger.Info("connected to database", slog.String("database", r.database))

	if err := r.EnsureIndexes(ctx); err != nil {
		r.logger.Error("failed to ensure indexes", slog.String("error", err.Error()))
	}
}

// EnsureIndexes creates the unique username index. Signup relies on the
// duplicate-key error from this index to detect taken usernames.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) users() *mongo.Collection {
	return r.client.Database(r.database).Collection(usersCollection)
}

func (r *Repository) comments() *mongo.Collection {
	return r.client.Database(r.database).Collection(commentsCollection)
}
