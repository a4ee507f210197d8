package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(time.Hour)
	w := registry.Open()
	require.NotEmpty(t, w.ID())

	got, err := registry.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)

	registry.Close(w.ID())
	_, err = registry.Get(w.ID())
	require.ErrorIs(t, err, domainerrors.ErrWizardNotFound)
	assert.Zero(t, registry.Len())
}
