package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/blogfeed/blogfeed/internal/auth"
	"github.com/blogfeed/blogfeed/internal/model"
	"github.com/blogfeed/blogfeed/internal/repository"
)

// AuthResult is a successfully authenticated user plus the session token
// that was established for them.
type AuthResult struct {
	User  *model.User
	Token string
}

// Signup hashes the password, creates the user and establishes a session.
// Returns ErrDuplicateUsername if the username is taken; other storage
// failures come back wrapped and are not user-visible.
func (s *Service) Signup(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("signup: establish session: %w", err)
	}

	s.metrics.IncSignup()
	s.logger.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies the credentials and establishes a session.
//
// The username lookup is retried on transient store errors; "user not
// found" is a result, not a failure, so it is never retried. When the
// retries are exhausted the caller gets ErrLookupExhausted, which is
// rendered identically to bad credentials so lookup failures leak no
// username-enumeration signal.
func (s *Service) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := retry(ctx, s.lookupAttempts, s.lookupDelay, func() (*model.User, error) {
		u, err := s.users.GetUserByUsername(ctx, username)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return u, err
	})
	if err != nil {
		s.metrics.IncLoginFailure()
		return nil, fmt.Errorf("%w: %v", ErrLookupExhausted, err)
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.metrics.IncLoginFailure()
		return nil, fmt.Errorf("login: establish session: %w", err)
	}

	s.metrics.IncLogin()
	s.logger.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return &AuthResult{User: user, Token: token}, nil
}

// Logout destroys the session bound to the token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
