package datasource

import (
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/google/uuid"
)

// BlobScheme prefixes process-local media references.
const BlobScheme = "blob:gophforum/"

// Blobs holds uploaded bytes for the lifetime of the process. References do
// not survive a restart.
type Blobs struct {
	mu    sync.RWMutex
	files map[string]models.File
}

func NewBlobs() *Blobs {
	return &Blobs{files: make(map[string]models.File)}
}

// Put stores a copy of f and returns its reference.
func (b *Blobs) Put(f models.File) string {
	ref := BlobScheme + uuid.NewString()
	f.Data = append([]byte(nil), f.Data...)

	b.mu.Lock()
	b.files[ref] = f
	b.mu.Unlock()

	return ref
}

// Get resolves a reference produced by Put.
func (b *Blobs) Get(ref string) (models.File, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.files[ref]
	return f, ok
}

func (b *Blobs) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.files)
}
