package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

type remoteSource struct {
	backend Backend
	now     func() time.Time
}

func NewRemote(b Backend) Source {
	return &remoteSource{backend: b, now: time.Now}
}

func (r *remoteSource) Remote() bool { return true }

func userFromPrincipal(p *models.Principal) *models.User {
	return models.NewUser(p.ID, p.Email, p.DisplayName)
}

func (r *remoteSource) Authenticate(ctx context.Context, email, password string, isSignup bool, displayName string) (*models.User, error) {
	if isSignup {
		if _, err := r.backend.SignUp(ctx, email, password, displayName); err != nil {
			return nil, err
		}
	}

	p, err := r.backend.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return userFromPrincipal(p), nil
}

func (r *remoteSource) ListThreads(ctx context.Context, offset, limit int) ([]models.Thread, error) {
	return r.backend.QueryThreads(ctx, offset, limit)
}

func (r *remoteSource) CreateThread(ctx context.Context, t models.Thread) error {
	_, err := r.backend.InsertThread(ctx, t)
	return err
}

// UploadFile stores the file at <owner>/<unix-millis>-<name>.
func (r *remoteSource) UploadFile(ctx context.Context, ownerID string, f models.File) (string, error) {
	path := fmt.Sprintf("%s/%d-%s", ownerID, r.now().UnixMilli(), f.Name)
	if err := r.backend.Upload(ctx, path, f); err != nil {
		return "", err
	}
	return r.backend.PublicURL(ctx, path)
}

func (r *remoteSource) SignOut(ctx context.Context) error {
	return r.backend.SignOut(ctx)
}

func (r *remoteSource) CurrentUser(ctx context.Context) (*models.User, error) {
	p, err := r.backend.GetUser(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	return userFromPrincipal(p), nil
}
