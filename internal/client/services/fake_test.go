package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/client/datasource"
	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// fakeSource wraps the local source and lets tests block, fail or delay
// individual calls.
type fakeSource struct {
	datasource.Source

	remote bool

	authErr    error
	signOutErr error
	current    *models.User

	listCalls atomic.Int32
	listGate  chan struct{}
	listErr   error

	mu        sync.Mutex
	created   []models.Thread
	createErr error

	uploadDelay func(name string) time.Duration
	uploadErr   map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{Source: datasource.NewLocal(datasource.NewBlobs())}
}

func (f *fakeSource) Remote() bool { return f.remote }

func (f *fakeSource) Authenticate(ctx context.Context, email, password string, isSignup bool, displayName string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.Source.Authenticate(ctx, email, password, isSignup, displayName)
}

func (f *fakeSource) ListThreads(ctx context.Context, offset, limit int) ([]models.Thread, error) {
	f.listCalls.Add(1)
	if f.listGate != nil {
		<-f.listGate
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Source.ListThreads(ctx, offset, limit)
}

func (f *fakeSource) CreateThread(_ context.Context, t models.Thread) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}

func (f *fakeSource) UploadFile(ctx context.Context, ownerID string, file models.File) (string, error) {
	if f.uploadDelay != nil {
		select {
		case <-time.After(f.uploadDelay(file.Name)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := f.uploadErr[file.Name]; err != nil {
		return "", err
	}
	return "url://" + ownerID + "/" + file.Name, nil
}

func (f *fakeSource) SignOut(context.Context) error { return f.signOutErr }

func (f *fakeSource) CurrentUser(context.Context) (*models.User, error) { return f.current.Clone(), nil }

// memStore is an in-memory session.Store.
type memStore struct {
	mu   sync.Mutex
	user *models.User
}

func (m *memStore) Load(context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user.Clone(), nil
}

func (m *memStore) Save(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u.Clone()
	return nil
}

func newSession() (*session.Session, *memStore) {
	st := &memStore{}
	return session.New(st, logging.Nop{}), st
}

func signedInSession() *session.Session {
	s, _ := newSession()
	s.Set(context.Background(), models.NewUser("u1", "levi@example.com", "Levi"))
	return s
}
