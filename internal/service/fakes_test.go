package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blogfeed/blogfeed/internal/cache"
	"github.com/blogfeed/blogfeed/internal/metrics"
	"github.com/blogfeed/blogfeed/internal/model"
	"github.com/blogfeed/blogfeed/internal/repository"
)

// fakeUserStore is an in-memory UserStore with injectable failures.
type fakeUserStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	byName map[string]*model.User

	createErr error
	// lookupErrs is consumed one entry per GetUserByUsername call;
	// a nil entry means the call proceeds normally.
	lookupErrs  []error
	lookupCalls int
	getByIDErr  error
	getByIDsErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[string]*model.User),
		byName: make(map[string]*model.User),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byName[user.Username]; exists {
		return repository.ErrUsernameExists
	}
	u := *user
	f.users[u.ID] = &u
	f.byName[u.Username] = &u
	return nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookupCalls++
	if len(f.lookupErrs) > 0 {
		err := f.lookupErrs[0]
		f.lookupErrs = f.lookupErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUsersByIDs(_ context.Context, ids []string) (map[string]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByIDsErr != nil {
		return nil, f.getByIDsErr
	}
	out := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

// fakeCommentStore is an in-memory CommentStore.
type fakeCommentStore struct {
	mu       sync.Mutex
	comments []*model.Comment

	createErr error
	listErr   error
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{}
}

func (f *fakeCommentStore) CreateComment(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	c := *comment
	f.comments = append(f.comments, &c)
	return nil
}

func (f *fakeCommentStore) ListComments(_ context.Context) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*model.Comment(nil), f.comments...), nil
}

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	seq      int

	createErr  error
	destroyErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.seq++
	token := fmt.Sprintf("token-%d", f.seq)
	f.sessions[token] = userID
	return token, nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.sessions[token]
	if !ok {
		return "", cache.ErrNoSession
	}
	return userID, nil
}

func (f *fakeSessionStore) Destroy(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.destroyErr != nil {
		return f.destroyErr
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

// testEnv bundles a Service with its fakes.
type testEnv struct {
	svc      *Service
	users    *fakeUserStore
	comments *fakeCommentStore
	sessions *fakeSessionStore
	recorder *metrics.InMemoryRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    newFakeUserStore(),
		comments: newFakeCommentStore(),
		sessions: newFakeSessionStore(),
		recorder: metrics.NewInMemory(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.svc = New(env.users, env.comments, env.sessions, env.recorder, logger)
	// Keep the retried lookup fast in tests.
	env.svc.lookupDelay = time.Millisecond
	return env
}
