package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	mockService "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
}

func createTestAuthService(t *testing.T, admin *config.AdminConfig) authServiceFixtures {
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(&config.Config{Admin: admin}, hasher, tokens, discardLogger()),
		hasher:  hasher,
		tokens:  tokens,
	}
}

var testAdmin = &config.AdminConfig{Username: "pepe", PasswordHash: "$2a$10$hash"}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t, testAdmin)
	expiresAt := time.Date(2024, 11, 6, 2, 0, 0, 0, time.UTC)

	fx.hasher.EXPECT().Check("secreto", "$2a$10$hash").Return(true).Once()
	fx.tokens.EXPECT().GenerateAccessToken("pepe", []string{"admin"}).Return("signed.jwt", expiresAt, nil).Once()

	token, err := fx.service.Login(context.Background(), "pepe", "secreto")

	require.NoError(t, err)
	assert.Equal(t, &usecase.AuthToken{AccessToken: "signed.jwt", TokenType: "Bearer", ExpiresAt: expiresAt}, token)
}

func TestAuthService_LoginRejected(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		hashMatch bool
	}{
		{name: "wrong password", username: "pepe", hashMatch: false},
		{name: "wrong username", username: "otro", hashMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestAuthService(t, testAdmin)

			fx.hasher.EXPECT().Check("secreto", "$2a$10$hash").Return(tt.hashMatch).Once()

			token, err := fx.service.Login(context.Background(), tt.username, "secreto")

			assert.Nil(t, token)
			require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginWithoutAdmin(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.Login(context.Background(), "pepe", "secreto")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginTokenFailure(t *testing.T) {
	fx := createTestAuthService(t, testAdmin)

	fx.hasher.EXPECT().Check("secreto", "$2a$10$hash").Return(true).Once()
	fx.tokens.EXPECT().GenerateAccessToken("pepe", []string{"admin"}).Return("", time.Time{}, errors.New("no key")).Once()

	_, err := fx.service.Login(context.Background(), "pepe", "secreto")

	require.Error(t, err)
}
