package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

func TestPreviewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewPreviewRegistry()
	upload := &entity.ImageUpload{Filename: "asado.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}

	ref := registry.Acquire(upload)
	assert.True(t, IsPreview(ref))
	assert.Equal(t, 1, registry.Len())

	got, ok := registry.Get(ref)
	require.True(t, ok)
	assert.Same(t, upload, got)

	got, ok = registry.Get(strings.TrimPrefix(ref, PreviewScheme))
	require.True(t, ok)
	assert.Same(t, upload, got)

	registry.Release(ref)
	registry.Release(ref)
	assert.Zero(t, registry.Len())

	_, ok = registry.Get(ref)
	assert.False(t, ok)
}
