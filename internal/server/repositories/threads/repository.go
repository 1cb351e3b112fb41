// Package threads stores forum threads in PostgreSQL.
package threads

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

type Repository interface {
	// Insert stores t and fills its ID, CreatedAt and Replies.
	Insert(ctx context.Context, t *models.Thread) (*models.Thread, error)
	// List returns threads newest first, with the author's display name.
	List(ctx context.Context, offset, limit int) ([]models.Thread, error)
}
