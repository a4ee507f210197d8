package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/cache"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

const (
	// ContactGreeting prefills the chat opened from the store QR code.
	ContactGreeting = "Hola, me gustaría hacer un pedido."

	defaultTenantCacheTTL = 5 * time.Minute
)

type storeService struct {
	tenants  repository.TenantRepository
	tenantID string
	qrcodes  service.QRCodeService
	settings *usecase.StoreSettings
	logger   *slog.Logger

	tenant *cache.Loader[string, *entity.Tenant]
}

// NewStoreService creates a new store service instance
func NewStoreService(
	tenants repository.TenantRepository,
	scope gateway.TenantScope,
	qrcodes service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StoreUsecase {
	ttl := defaultTenantCacheTTL
	if cfg.Tenant != nil && cfg.Tenant.CacheTTL > 0 {
		ttl = cfg.Tenant.CacheTTL
	}

	return &storeService{
		tenants:  tenants,
		tenantID: scope.ID,
		qrcodes:  qrcodes,
		settings: settingsFromConfig(cfg),
		logger:   logger,
		tenant:   cache.NewLoader[string, *entity.Tenant](ttl),
	}
}

func settingsFromConfig(cfg *config.Config) *usecase.StoreSettings {
	settings := &usecase.StoreSettings{
		CurrencyCode:    "ARS",
		CurrencySymbol:  "$",
		PriceLocale:     "es-AR",
		PriceDecimals:   2,
		DefaultQuantity: cart.FirstQuantity,
		QuantityStep:    cart.RepeatIncrement,
	}
	if store := cfg.Store; store != nil {
		settings.Name = store.Name
		settings.WhatsApp = store.WhatsApp
		settings.Categories = slices.Clone(store.Categories)
		settings.PaymentMethods = slices.Clone(store.PaymentMethods)
		settings.LowStockThreshold = store.LowStockThreshold
	}
	if cfg.ImageHost != nil {
		settings.MaxUploadSize = cfg.ImageHost.MaxUploadSize
	}

	return settings
}

// Config returns the tenant display data. The contact directory is not part of it.
func (s *storeService) Config(ctx context.Context) (*entity.Tenant, error) {
	tenant, err := s.tenant.Get(ctx, s.tenantID, func(ctx context.Context) (*entity.Tenant, error) {
		return s.tenants.FindByID(ctx, s.tenantID)
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to load tenant config",
			slog.String("tenant_id", s.tenantID),
			slog.Any("error", err),
		)

		return nil, toAppError(errors.Wrap(err, "load tenant config"))
	}

	return s.public(tenant), nil
}

// public copies tenant without its contacts and fills blanks from the static config.
func (s *storeService) public(tenant *entity.Tenant) *entity.Tenant {
	out := *tenant
	out.Hours = slices.Clone(tenant.Hours)
	out.Contacts = nil
	if out.Name == "" {
		out.Name = s.settings.Name
	}
	if out.Social.WhatsApp == "" {
		out.Social.WhatsApp = s.settings.WhatsApp
	}

	return &out
}

func (s *storeService) Settings() *usecase.StoreSettings {
	out := *s.settings
	out.Categories = slices.Clone(s.settings.Categories)
	out.PaymentMethods = slices.Clone(s.settings.PaymentMethods)

	return &out
}

// ContactQR encodes the store's WhatsApp link with a greeting.
func (s *storeService) ContactQR(ctx context.Context) ([]byte, error) {
	phone := s.orderPhone(ctx)
	if phone == "" {
		return nil, errors.New("store has no whatsapp number configured")
	}

	png, err := s.qrcodes.GenerateLinkQR(cart.DeepLink(phone, ContactGreeting))
	if err != nil {
		return nil, errors.Wrap(err, "generate contact qr")
	}

	return png, nil
}

// orderPhone is the tenant's WhatsApp number, falling back to the static config
// when the tenant cannot be read.
func (s *storeService) orderPhone(ctx context.Context) string {
	tenant, err := s.Config(ctx)
	if err != nil {
		return s.settings.WhatsApp
	}

	return tenant.Social.WhatsApp
}
