package gateway

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	mockRepo "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/repository"
)

func TestResolveTenant(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.DiscardHandler)
	const url = "https://donpepe.example.com"

	tests := []struct {
		name    string
		cfg     TenantConfig
		setup   func(repo *mockRepo.MockTenantRepository)
		wantID  string
		wantErr bool
	}{
		{
			name:   "explicit id wins",
			cfg:    TenantConfig{ID: "don-pepe", URL: url, FallbackID: "demo"},
			wantID: "don-pepe",
		},
		{
			name: "lookup by url",
			cfg:  TenantConfig{URL: url, FallbackID: "demo"},
			setup: func(repo *mockRepo.MockTenantRepository) {
				repo.EXPECT().FindByURL(context.Background(), url).Return(&entity.Tenant{ID: "from-url"}, nil)
			},
			wantID: "from-url",
		},
		{
			name: "unknown url falls back",
			cfg:  TenantConfig{URL: url, FallbackID: "demo"},
			setup: func(repo *mockRepo.MockTenantRepository) {
				repo.EXPECT().FindByURL(context.Background(), url).Return(nil, repository.ErrTenantNotFound)
			},
			wantID: "demo",
		},
		{
			name: "lookup failure is returned",
			cfg:  TenantConfig{URL: url, FallbackID: "demo"},
			setup: func(repo *mockRepo.MockTenantRepository) {
				repo.EXPECT().FindByURL(context.Background(), url).Return(nil, errors.New("deadline exceeded"))
			},
			wantErr: true,
		},
		{
			name:    "nothing configured",
			cfg:     TenantConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mockRepo.NewMockTenantRepository(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			scope, err := ResolveTenant(context.Background(), repo, tt.cfg, logger)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, scope.ID)
		})
	}
}
