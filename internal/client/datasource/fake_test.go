package datasource

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// fakeBackend keeps accounts and threads in memory and records calls.
type fakeBackend struct {
	mu       sync.Mutex
	accounts map[string]string
	names    map[string]string
	current  *models.Principal
	threads  []models.Thread
	uploads  map[string]models.File
	calls    []string

	queryErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		accounts: map[string]string{},
		names:    map[string]string{},
		uploads:  map[string]models.File{},
	}
}

func (f *fakeBackend) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeBackend) SignUp(_ context.Context, email, password, displayName string) (*models.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SignUp")
	if _, ok := f.accounts[email]; ok {
		return nil, common.NewAuthError(common.ErrUserExists.Error())
	}
	f.accounts[email] = password
	f.names[email] = displayName
	return &models.Principal{ID: "id-" + email, Email: email, DisplayName: displayName}, nil
}

func (f *fakeBackend) SignIn(_ context.Context, email, password string) (*models.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SignIn")
	if pw, ok := f.accounts[email]; !ok || pw != password {
		return nil, common.NewAuthError(common.ErrInvalidCredentials.Error())
	}
	f.current = &models.Principal{ID: "id-" + email, Email: email, DisplayName: f.names[email]}
	return f.current, nil
}

func (f *fakeBackend) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SignOut")
	f.current = nil
	return nil
}

func (f *fakeBackend) GetUser(context.Context) (*models.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetUser")
	return f.current, nil
}

func (f *fakeBackend) InsertThread(_ context.Context, t models.Thread) (*models.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertThread")
	f.threads = append([]models.Thread{t}, f.threads...)
	return &t, nil
}

func (f *fakeBackend) QueryThreads(_ context.Context, offset, limit int) ([]models.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("QueryThreads")
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	end := min(offset+limit, len(f.threads))
	if offset >= end {
		return []models.Thread{}, nil
	}
	return append([]models.Thread(nil), f.threads[offset:end]...), nil
}

func (f *fakeBackend) Upload(_ context.Context, path string, file models.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Upload")
	f.uploads[path] = file
	return nil
}

func (f *fakeBackend) PublicURL(_ context.Context, path string) (string, error) {
	return "https://cdn.test/media/" + path, nil
}
