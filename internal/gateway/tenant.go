package gateway

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
)

// TenantConfig selects the tenant a deployment serves.
type TenantConfig struct {
	ID         string
	URL        string
	FallbackID string
}

// TenantScope is the tenant every gateway call is bound to. It is resolved once at startup.
type TenantScope struct {
	ID string
}

// ResolveTenant picks the tenant id: the configured id, else the tenant registered
// for the configured URL, else the fallback id.
func ResolveTenant(ctx context.Context, tenants repository.TenantRepository, cfg TenantConfig, logger *slog.Logger) (TenantScope, error) {
	if cfg.ID != "" {
		return TenantScope{ID: cfg.ID}, nil
	}

	if cfg.URL != "" {
		tenant, err := tenants.FindByURL(ctx, cfg.URL)
		switch {
		case err == nil:
			return TenantScope{ID: tenant.ID}, nil
		case errors.Is(err, repository.ErrTenantNotFound):
			logger.Warn("No tenant registered for URL, using fallback",
				slog.String("url", cfg.URL),
				slog.String("fallback_id", cfg.FallbackID),
			)
		default:
			return TenantScope{}, errors.Wrap(err, "failed to resolve tenant by url")
		}
	}

	if cfg.FallbackID == "" {
		return TenantScope{}, errors.New("no tenant configured")
	}

	return TenantScope{ID: cfg.FallbackID}, nil
}
