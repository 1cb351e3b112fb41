package threads

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophforum/internal/dbx"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, t *models.Thread) (*models.Thread, error) {
	query :=
		`INSERT INTO threads (title, body, category, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, replies`

	err := r.db.QueryRowContext(ctx, query, t.Title, t.Body, t.Category, t.AuthorID).
		Scan(&t.ID, &t.CreatedAt, &t.Replies)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]models.Thread, error) {
	query :=
		`SELECT t.id, t.title, t.body, t.category, t.author_id, u.display_name, t.created_at, t.replies
		 FROM threads t
		 JOIN users u ON u.id = t.author_id
		 ORDER BY t.created_at DESC, t.id DESC
		 LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Thread{}
	for rows.Next() {
		var t models.Thread
		if err := rows.Scan(&t.ID, &t.Title, &t.Body, &t.Category, &t.AuthorID, &t.AuthorName, &t.CreatedAt, &t.Replies); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
