// Package models defines server-side records persisted in PostgreSQL.
package models

import (
	"time"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

// User is an account row. PasswordHash is an encoded argon2id hash.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the public view of the account sent to clients.
func (u *User) Principal() models.Principal {
	return models.Principal{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}
