package models

import "time"

// RefreshToken is an opaque rotation token. The token text is the key; one
// user may hold several, one per signed-in client.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}
