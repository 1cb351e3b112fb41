// Package session keeps the signed-in user. Store is the durable slot,
// Session is the in-memory owner that writes through to it.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// UserKey is the metadata key of the persisted user.
const UserKey = "demo_user"

// Store persists at most one user. A nil user means absent.
type Store interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
}

// SQLiteStore keeps the user as JSON in the metadata table.
type SQLiteStore struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewSQLiteStore(repo metadata.Repository, l logging.Logger) *SQLiteStore {
	return &SQLiteStore{repo: repo, logger: l.With("module", "session_store")}
}

// Load returns the stored user. An unreadable or corrupt value is logged
// and reported as absent.
func (s *SQLiteStore) Load(ctx context.Context) (*models.User, error) {
	raw, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		s.logger.Warn(ctx, "session read failed", "error", err)
		return nil, nil
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn(ctx, "stored session is corrupt, ignoring", "error", err)
		return nil, nil
	}
	if u.Media == nil {
		u.Media = []models.MediaItem{}
	}
	return &u, nil
}

// Save overwrites the slot, or deletes it when u is nil.
func (s *SQLiteStore) Save(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.repo.Delete(ctx, UserKey)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.repo.Set(ctx, UserKey, raw)
}
