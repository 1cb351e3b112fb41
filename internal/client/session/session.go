package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// Session owns the current user. Every change is written through to the
// Store; a failed write is logged and the in-memory value is kept.
// Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	store  Store
	logger logging.Logger
}

func New(store Store, l logging.Logger) *Session {
	return &Session{store: store, logger: l.With("module", "session")}
}

// Restore seeds the session from the Store.
func (s *Session) Restore(ctx context.Context) *models.User {
	u, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "session restore failed", "error", err)
		u = nil
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	return u.Clone()
}

// User returns a copy of the current user, or nil when signed out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// SignedIn reports whether a user is present.
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Set replaces the current user. nil signs out.
func (s *Session) Set(ctx context.Context, u *models.User) {
	s.mu.Lock()
	s.user = u.Clone()
	snapshot := s.user.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Update applies fn to the current user under the lock and persists the
// result. It returns false when nobody is signed in.
func (s *Session) Update(ctx context.Context, fn func(u *models.User)) bool {
	return s.update(ctx, "", fn)
}

// UpdateUser is Update limited to the user with id. It returns false when
// that user is no longer the one signed in.
func (s *Session) UpdateUser(ctx context.Context, id string, fn func(u *models.User)) bool {
	return s.update(ctx, id, fn)
}

func (s *Session) update(ctx context.Context, id string, fn func(u *models.User)) bool {
	s.mu.Lock()
	if s.user == nil || (id != "" && s.user.ID != id) {
		s.mu.Unlock()
		return false
	}
	fn(s.user)
	snapshot := s.user.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return true
}

// Clear signs out.
func (s *Session) Clear(ctx context.Context) {
	s.Set(ctx, nil)
}

func (s *Session) persist(ctx context.Context, u *models.User) {
	if err := s.store.Save(ctx, u); err != nil {
		s.logger.Warn(ctx, "session persist failed", "error", err)
	}
}
