// Package models defines the forum domain shared by the client and the server:
// users, threads, media items and the static category catalog.
package models

import "strings"

// User is the signed-in account as the client keeps it in its session.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Avatar      string      `json:"avatar"`
	Bio         string      `json:"bio"`
	Subscribed  bool        `json:"subscribed"`
	Media       []MediaItem `json:"media"`
}

// MediaItem is one uploaded file on a user's profile. URL is either a durable
// public URL or a process-local blob reference.
type MediaItem struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Principal is what the backend returns for an authenticated account.
type Principal struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// DefaultBio is shown on a profile whose bio was never edited.
const DefaultBio = "I love building and sharing! ✨"

// EmailLocalPart returns the part of email before the first '@'.
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// NewUser builds a fresh session user: not subscribed, no avatar, no media.
// An empty displayName falls back to the email's local part.
func NewUser(id, email, displayName string) *User {
	if displayName == "" {
		displayName = EmailLocalPart(email)
	}
	return &User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Media:       []MediaItem{},
	}
}

// Clone returns a deep copy so callers can mutate it without touching
// the session's value.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Media != nil {
		c.Media = append([]MediaItem(nil), u.Media...)
	}
	return &c
}
