package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/server/metrics"
	"github.com/dmitrijs2005/gophforum/internal/server/storage"
)

// MaxUploadSize bounds one object. It stays below the default gRPC message
// limit.
const MaxUploadSize = 3 << 20

type MediaService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

func NewMediaService(store storage.Store, m *metrics.Metrics) *MediaService {
	return &MediaService{store: store, metrics: m}
}

// Upload writes data under key on behalf of userID. Users may only write
// below their own "<user id>/" prefix.
func (s *MediaService) Upload(ctx context.Context, userID, key, contentType string, data []byte) (string, error) {
	if key == "" || len(data) == 0 {
		return "", common.ErrMissingField
	}
	if !ownsKey(userID, key) {
		return "", common.ErrForbidden
	}
	if len(data) > MaxUploadSize {
		return "", common.ErrTooLarge
	}

	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("error storing object: %w", err)
	}
	if s.metrics != nil {
		s.metrics.UploadedBytes.Add(float64(len(data)))
	}
	return key, nil
}

func (s *MediaService) PublicURL(key string) (string, error) {
	if key == "" {
		return "", common.ErrMissingField
	}
	return s.store.PublicURL(key), nil
}

func ownsKey(userID, key string) bool {
	if userID == "" {
		return false
	}
	prefix := userID + "/"
	return strings.HasPrefix(key, prefix) && path.Clean(key) == key && len(key) > len(prefix)
}
