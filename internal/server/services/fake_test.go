package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/dbx"
	pm "github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/dmitrijs2005/gophforum/internal/server/config"
	"github.com/dmitrijs2005/gophforum/internal/server/models"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/threads"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type fakeUsersRepo struct {
	mu     sync.Mutex
	byID   map[string]*models.User
	nextID int
	err    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrUserExists
		}
	}
	f.nextID++
	u.ID = "u" + string(rune('0'+f.nextID))
	u.CreatedAt = time.Now()
	c := *u
	f.byID[u.ID] = &c
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

type fakeRefreshRepo struct {
	mu        sync.Mutex
	tokens    map[string]*models.RefreshToken
	createErr error
	deleteErr error
	purgeErr  error
	purgedAt  time.Time
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	f.purgedAt = before
	var n int64
	for k, t := range f.tokens {
		if t.Expires.Before(before) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeRefreshRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens)
}

type fakeThreadsRepo struct {
	inserted  []pm.Thread
	listed    [2]int
	listOut   []pm.Thread
	insertErr error
	listErr   error
}

func (f *fakeThreadsRepo) Insert(_ context.Context, t *pm.Thread) (*pm.Thread, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	t.ID = "t1"
	t.CreatedAt = time.Now()
	f.inserted = append(f.inserted, *t)
	return t, nil
}

func (f *fakeThreadsRepo) List(_ context.Context, offset, limit int) ([]pm.Thread, error) {
	f.listed = [2]int{offset, limit}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	users   *fakeUsersRepo
	refresh *fakeRefreshRepo
	threads *fakeThreadsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newFakeUsersRepo(),
		refresh: newFakeRefreshRepo(),
		threads: &fakeThreadsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Threads(dbx.DBTX) threads.Repository             { return m.threads }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
}
