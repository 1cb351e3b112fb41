package models

import "time"

// Thread is a forum post. Replies is display-only and never incremented here.
type Thread struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Category   string    `json:"category"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	Replies    int       `json:"replies"`
}
