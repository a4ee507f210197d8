package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

type authService struct {
	username     string
	passwordHash string
	hasher       service.PasswordHasher
	tokens       service.TokenService
	logger       *slog.Logger
}

// NewAuthService creates the admin login service for the single configured administrator
func NewAuthService(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	s := &authService{
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
	if cfg.Admin != nil {
		s.username = cfg.Admin.Username
		s.passwordHash = cfg.Admin.PasswordHash
	}

	return s
}

func (s *authService) Login(ctx context.Context, username, password string) (*usecase.AuthToken, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.username == "" || s.passwordHash == "" {
		logger.Warn("Admin login attempted but no administrator is configured")

		return nil, domainerrors.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// Check the hash even when the username is wrong.
	passOK := s.hasher.Check(password, s.passwordHash)
	if !userOK || !passOK {
		logger.Warn("Admin login failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(s.username, entity.Roles{entity.RoleAdmin}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	logger.Info("Admin logged in", slog.String("username", s.username))

	return &usecase.AuthToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
