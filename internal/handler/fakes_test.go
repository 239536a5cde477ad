package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/blogfeed/blogfeed/internal/cache"
	"github.com/blogfeed/blogfeed/internal/metrics"
	"github.com/blogfeed/blogfeed/internal/middleware"
	"github.com/blogfeed/blogfeed/internal/model"
	"github.com/blogfeed/blogfeed/internal/repository"
	"github.com/blogfeed/blogfeed/internal/service"
)

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	byName map[string]*model.User

	createErr error
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
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUsersByIDs(_ context.Context, ids []string) (map[string]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeCommentStore struct {
	mu       sync.Mutex
	comments []*model.Comment

	listErr error
}

func (f *fakeCommentStore) CreateComment(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func (f *fakeCommentStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.comments)
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	seq      int

	destroyErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

// testApp is a fully wired router backed by fakes.
type testApp struct {
	router   *chi.Mux
	users    *fakeUserStore
	comments *fakeCommentStore
	sessions *fakeSessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		users:    newFakeUserStore(),
		comments: &fakeCommentStore{},
		sessions: newFakeSessionStore(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(app.users, app.comments, app.sessions, metrics.NewNoop(), logger)

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	h := New(svc, renderer, logger, 0)
	health := NewHealthHandler(nil, nil)

	app.router = Router(h, health, middleware.SessionConfig{
		Logger:   logger,
		Sessions: app.sessions,
	}, logger)

	return app
}

// get performs a GET request, optionally with a session cookie.
func (a *testApp) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// postForm performs a form POST, optionally with a session cookie.
func (a *testApp) postForm(path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// sessionToken extracts the session cookie from a response.
func sessionToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}
