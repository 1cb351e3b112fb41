package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/repomanager"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ThreadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewThreadService(db *sql.DB, m repomanager.RepositoryManager) *ThreadService {
	return &ThreadService{db: db, repomanager: m}
}

// Create stores a thread authored by userID. Only the title is required;
// an empty category means models.DefaultCategory.
func (s *ThreadService) Create(ctx context.Context, userID string, t models.Thread) (*models.Thread, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Body = strings.TrimSpace(t.Body)
	if t.Title == "" {
		return nil, common.ErrMissingField
	}
	if t.Category == "" {
		t.Category = models.DefaultCategory
	}
	if !models.IsValidCategory(t.Category) {
		return nil, common.ErrInvalidCategory
	}

	author, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading author: %w", err)
	}

	t.ID = ""
	t.AuthorID = author.ID
	t.AuthorName = author.DisplayName
	t.Replies = 0

	created, err := s.repomanager.Threads(s.db).Insert(ctx, &t)
	if err != nil {
		return nil, fmt.Errorf("error creating thread: %w", err)
	}
	return created, nil
}

// List returns one window of threads, newest first. A zero limit yields an
// empty window, a negative one means DefaultPageSize and limits above
// MaxPageSize are capped.
func (s *ThreadService) List(ctx context.Context, offset, limit int) ([]models.Thread, error) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit == 0:
		return []models.Thread{}, nil
	case limit < 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	threads, err := s.repomanager.Threads(s.db).List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing threads: %w", err)
	}
	return threads, nil
}
