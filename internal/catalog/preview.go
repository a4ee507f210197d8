package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// PreviewScheme prefixes local image references shown before an upload is hosted.
const PreviewScheme = "preview://"

// PreviewRegistry keeps uploaded image bytes addressable while their upload is in flight.
type PreviewRegistry struct {
	mu    sync.RWMutex
	items map[string]*entity.ImageUpload
}

func NewPreviewRegistry() *PreviewRegistry {
	return &PreviewRegistry{items: make(map[string]*entity.ImageUpload)}
}

// Acquire registers upload and returns its preview reference.
func (r *PreviewRegistry) Acquire(upload *entity.ImageUpload) string {
	ref := PreviewScheme + uuid.NewString()

	r.mu.Lock()
	r.items[ref] = upload
	r.mu.Unlock()

	return ref
}

// Get returns the upload behind ref. A bare id without the scheme is accepted too.
func (r *PreviewRegistry) Get(ref string) (*entity.ImageUpload, bool) {
	if !strings.HasPrefix(ref, PreviewScheme) {
		ref = PreviewScheme + ref
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	upload, ok := r.items[ref]

	return upload, ok
}

// Release frees ref. Releasing an unknown reference is a no-op.
func (r *PreviewRegistry) Release(ref string) {
	r.mu.Lock()
	delete(r.items, ref)
	r.mu.Unlock()
}

// Len returns the number of outstanding references.
func (r *PreviewRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// IsPreview reports whether image is a local preview reference.
func IsPreview(image string) bool {
	return strings.HasPrefix(image, PreviewScheme)
}
