package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LudwingValecillos/VentaCarniceria/config"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "zero cost", cfg: &config.Config{Auth: &config.AuthConfig{}}, want: bcrypt.DefaultCost},
		{name: "explicit cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}, want: bcrypt.MinCost},
		{name: "too high", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("chimichurri-2024")
	require.NoError(t, err)
	assert.NotEqual(t, "chimichurri-2024", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("chimichurri-2024", hash))
	assert.False(t, hasher.Check("chimichurri-2025", hash))
	assert.False(t, hasher.Check("chimichurri-2024", "not-a-hash"))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptHasher(nil).Hash("")
	assert.Error(t, err)
}
