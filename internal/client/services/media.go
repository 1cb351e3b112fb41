package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/client/datasource"
	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrBusy is returned while another upload is outstanding.
	ErrBusy = errors.New("an upload is already in progress")
	// ErrSessionChanged is returned when the uploader signed out or another
	// user signed in before the upload finished. The result is discarded.
	ErrSessionChanged = errors.New("signed-in user changed during the upload")
)

const msgLoginToUpload = "Please log in to upload."

// Media uploads avatars and profile media for the signed-in user.
type Media struct {
	mu      sync.Mutex
	busy    bool
	source  datasource.Source
	session *session.Session
	logger  logging.Logger
}

func NewMedia(src datasource.Source, s *session.Session, l logging.Logger) *Media {
	return &Media{source: src, session: s, logger: l.With("module", "media")}
}

func (m *Media) acquire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return false
	}
	m.busy = true
	return true
}

func (m *Media) release() {
	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
}

// Busy reports whether an upload is outstanding.
func (m *Media) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// UploadAvatar uploads f and makes it the user's avatar.
func (m *Media) UploadAvatar(ctx context.Context, f models.File) (string, error) {
	u := m.session.User()
	if u == nil {
		return "", common.NewValidationError(msgLoginToUpload)
	}
	if !m.acquire() {
		return "", ErrBusy
	}
	defer m.release()

	url, err := m.source.UploadFile(ctx, u.ID, f)
	if err != nil {
		m.logger.Warn(ctx, "avatar upload failed", "file", f.Name, "error", err)
		return "", err
	}

	if !m.session.UpdateUser(ctx, u.ID, func(u *models.User) { u.Avatar = url }) {
		m.logger.Warn(ctx, "avatar upload discarded", "owner", u.ID)
		return "", ErrSessionChanged
	}
	return url, nil
}

// UploadMedia uploads files concurrently. Either every file is uploaded and
// appended to the user's media in input order, or the first error is
// returned and the media list is unchanged.
func (m *Media) UploadMedia(ctx context.Context, files []models.File) ([]models.MediaItem, error) {
	u := m.session.User()
	if u == nil {
		return nil, common.NewValidationError(msgLoginToUpload)
	}
	if len(files) == 0 {
		return []models.MediaItem{}, nil
	}
	if !m.acquire() {
		return nil, ErrBusy
	}
	defer m.release()

	items := make([]models.MediaItem, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := m.source.UploadFile(gctx, u.ID, f)
			if err != nil {
				return err
			}
			items[i] = models.MediaItem{URL: url, Name: f.Name}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.logger.Warn(ctx, "media upload failed", "files", len(files), "error", err)
		return nil, err
	}

	if !m.session.UpdateUser(ctx, u.ID, func(u *models.User) { u.Media = append(u.Media, items...) }) {
		m.logger.Warn(ctx, "media upload discarded", "owner", u.ID, "files", len(items))
		return nil, ErrSessionChanged
	}
	m.logger.Info(ctx, "media uploaded", "files", len(items))
	return items, nil
}
