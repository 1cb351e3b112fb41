package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&RefreshToken{Expires: now.Add(time.Second)}).Expired(now))
	assert.True(t, (&RefreshToken{Expires: now}).Expired(now))
	assert.True(t, (&RefreshToken{Expires: now.Add(-time.Hour)}).Expired(now))
}

func TestUser_Principal(t *testing.T) {
	u := &User{ID: "u1", Email: "levi@example.com", DisplayName: "Levi", PasswordHash: "secret"}
	p := u.Principal()

	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "levi@example.com", p.Email)
	assert.Equal(t, "Levi", p.DisplayName)
}
