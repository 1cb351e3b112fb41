package grpc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	pm "github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/dmitrijs2005/gophforum/internal/server/auth"
	"github.com/dmitrijs2005/gophforum/internal/server/metrics"
	"github.com/dmitrijs2005/gophforum/internal/server/models"
	"github.com/dmitrijs2005/gophforum/internal/server/services"
)

const testSecret = "secret"

// fakeUsers keeps accounts in memory and mints real JWTs, so the interceptor
// sees the same tokens it would in production.
type fakeUsers struct {
	mu       sync.Mutex
	validity time.Duration
	byEmail  map[string]*models.User
	refresh  map[string]string
	seq      int
	err      error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		validity: time.Hour,
		byEmail:  map[string]*models.User{},
		refresh:  map[string]string{},
	}
}

func (f *fakeUsers) issue(userID string, validity time.Duration) (*services.TokenPair, error) {
	access, err := auth.GenerateToken(userID, []byte(testSecret), validity)
	if err != nil {
		return nil, err
	}
	f.seq++
	refresh := fmt.Sprintf("r%d", f.seq)
	f.refresh[refresh] = userID
	return &services.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (f *fakeUsers) SignUp(_ context.Context, email, password, displayName string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if email == "" || password == "" {
		return nil, common.ErrMissingField
	}
	if _, ok := f.byEmail[email]; ok {
		return nil, common.ErrUserExists
	}
	if displayName == "" {
		displayName = pm.EmailLocalPart(email)
	}
	f.seq++
	u := &models.User{ID: fmt.Sprintf("u%d", f.seq), Email: email, DisplayName: displayName, PasswordHash: password}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) SignIn(_ context.Context, email, password string) (*models.User, *services.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok || u.PasswordHash != password {
		return nil, nil, common.ErrInvalidCredentials
	}
	pair, err := f.issue(u.ID, f.validity)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

func (f *fakeUsers) SignOut(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for tok, id := range f.refresh {
		if id == userID {
			delete(f.refresh, tok)
		}
	}
	return nil
}

func (f *fakeUsers) GetUser(_ context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, common.ErrorUnauthorized
}

func (f *fakeUsers) RefreshToken(_ context.Context, refreshToken string) (*services.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.refresh[refreshToken]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	delete(f.refresh, refreshToken)
	return f.issue(userID, time.Hour)
}

func (f *fakeUsers) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.refresh)
}

type fakeThreads struct {
	mu      sync.Mutex
	threads []pm.Thread
	err     error
}

func (f *fakeThreads) Create(_ context.Context, userID string, t pm.Thread) (*pm.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if t.Title == "" {
		return nil, common.ErrMissingField
	}
	t.ID = fmt.Sprintf("t%d", len(f.threads)+1)
	t.AuthorID = userID
	t.CreatedAt = time.Unix(int64(len(f.threads)), 0).UTC()
	f.threads = append([]pm.Thread{t}, f.threads...)
	return &t, nil
}

func (f *fakeThreads) List(_ context.Context, offset, limit int) ([]pm.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.threads) {
		return []pm.Thread{}, nil
	}
	end := min(offset+limit, len(f.threads))
	return append([]pm.Thread{}, f.threads[offset:end]...), nil
}

type fakeMedia struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeMedia) Upload(_ context.Context, userID, key, _ string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !strings.HasPrefix(key, userID+"/") {
		return "", common.ErrForbidden
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return key, nil
}

func (f *fakeMedia) PublicURL(key string) (string, error) {
	if key == "" {
		return "", common.ErrMissingField
	}
	return "https://cdn/media/" + key, nil
}

type fixture struct {
	srv     *GRPCServer
	users   *fakeUsers
	threads *fakeThreads
	media   *fakeMedia
	metrics *metrics.Metrics
}

func newFixture() *fixture {
	f := &fixture{
		users:   newFakeUsers(),
		threads: &fakeThreads{},
		media:   &fakeMedia{},
		metrics: metrics.New(),
	}
	f.srv = NewGRPCServer("127.0.0.1:0", logging.Nop{}, f.users, f.threads, f.media, testSecret, f.metrics)
	return f
}

func withUser(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}
