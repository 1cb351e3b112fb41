package datasource

import (
	"context"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

// localIDLength is how many characters of the encoded email form the id.
const localIDLength = 10

const placeholderBody = "Placeholder body"

type localSource struct {
	blobs *Blobs
	now   func() time.Time
}

func NewLocal(blobs *Blobs) Source {
	return &localSource{blobs: blobs, now: time.Now}
}

func (l *localSource) Remote() bool { return false }

// LocalUserID derives the offline identifier from an email. It is an
// encoding, not a secret.
func LocalUserID(email string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(email))
	if len(enc) > localIDLength {
		enc = enc[:localIDLength]
	}
	return enc
}

// Authenticate accepts any credentials.
func (l *localSource) Authenticate(_ context.Context, email, _ string, _ bool, displayName string) (*models.User, error) {
	return models.NewUser(LocalUserID(email), email, displayName), nil
}

func (l *localSource) ListThreads(_ context.Context, offset, limit int) ([]models.Thread, error) {
	total := len(models.SampleThreads)
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if end > total {
		end = total
	}
	if offset >= end {
		return []models.Thread{}, nil
	}

	now := l.now()
	out := make([]models.Thread, 0, end-offset)
	for i := offset; i < end; i++ {
		s := models.SampleThreads[i]
		out = append(out, models.Thread{
			ID:         strconv.Itoa(i),
			Title:      s.Title,
			Body:       placeholderBody,
			Category:   s.Category,
			AuthorName: s.Author,
			CreatedAt:  now,
			Replies:    s.Replies,
		})
	}
	return out, nil
}

// CreateThread accepts and discards the thread.
func (l *localSource) CreateThread(context.Context, models.Thread) error {
	return nil
}

func (l *localSource) UploadFile(_ context.Context, _ string, f models.File) (string, error) {
	return l.blobs.Put(f), nil
}

func (l *localSource) SignOut(context.Context) error { return nil }

func (l *localSource) CurrentUser(context.Context) (*models.User, error) { return nil, nil }
