// Package datasource is the single seam between the client controllers and
// where forum data lives. New picks the remote or the local variant once at
// startup; callers never branch on the mode themselves.
package datasource

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

// Source is what the controllers depend on. Errors from the remote variant
// pass through unchanged; nothing is retried.
type Source interface {
	// Authenticate signs in, or signs up and then signs in when isSignup.
	Authenticate(ctx context.Context, email, password string, isSignup bool, displayName string) (*models.User, error)
	// ListThreads returns the window [offset, offset+limit), newest first.
	ListThreads(ctx context.Context, offset, limit int) ([]models.Thread, error)
	CreateThread(ctx context.Context, t models.Thread) error
	// UploadFile stores f under ownerID and returns a URL for it.
	UploadFile(ctx context.Context, ownerID string, f models.File) (string, error)
	SignOut(ctx context.Context) error
	// CurrentUser returns the user bound to persisted credentials, or nil.
	CurrentUser(ctx context.Context) (*models.User, error)
	Remote() bool
}

// Backend is the remote capability set: auth, thread rows, object storage.
type Backend interface {
	SignUp(ctx context.Context, email, password, displayName string) (*models.Principal, error)
	SignIn(ctx context.Context, email, password string) (*models.Principal, error)
	SignOut(ctx context.Context) error
	// GetUser returns nil, nil when no credentials are held.
	GetUser(ctx context.Context) (*models.Principal, error)
	InsertThread(ctx context.Context, t models.Thread) (*models.Thread, error)
	QueryThreads(ctx context.Context, offset, limit int) ([]models.Thread, error)
	Upload(ctx context.Context, path string, f models.File) error
	PublicURL(ctx context.Context, path string) (string, error)
}

// New returns the remote source when remoteEnabled and a backend is given,
// otherwise the local one.
func New(remoteEnabled bool, backend Backend) Source {
	if remoteEnabled && backend != nil {
		return NewRemote(backend)
	}
	return NewLocal(NewBlobs())
}
