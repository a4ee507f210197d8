package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/middleware"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/router/handler"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/auth"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/firebase"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/imagehost"
	logs "github.com/LudwingValecillos/VentaCarniceria/internal/infra/log"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/pubsub"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/qrcode"
	"github.com/LudwingValecillos/VentaCarniceria/internal/sale"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectState(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSweepers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
			newTenantScope,
			newGateway,
		),
	)
}

// newTenantScope resolves the tenant once; every repository call is bound to it.
func newTenantScope(ctx context.Context, cfg *config.Config, tenants repository.TenantRepository, logger *slog.Logger) (gateway.TenantScope, error) {
	scope, err := gateway.ResolveTenant(ctx, tenants, gateway.TenantConfig{
		ID:         cfg.Tenant.ID,
		URL:        cfg.Tenant.URL,
		FallbackID: cfg.Tenant.FallbackID,
	}, logger)
	if err != nil {
		return gateway.TenantScope{}, err
	}
	logger.Info("Serving tenant", slog.String("tenant_id", scope.ID))

	return scope, nil
}

func newGateway(
	cfg *config.Config,
	scope gateway.TenantScope,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	images service.ImageHost,
	logger *slog.Logger,
) *gateway.Gateway {
	return gateway.New(scope, products, sales, images, cfg.Catalog.CacheTTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			imagehost.New,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil || cfg.QRCode.Size <= 0 {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectState() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewStore,
			catalog.NewPreviewRegistry,
			newFeed,
			newActions,
			newWizardRegistry,
			newCartRegistry,
		),
	)
}

func newFeed(cfg *config.Config, logger *slog.Logger) *catalog.Feed {
	return catalog.NewFeed(logger, cfg.Catalog.NotificationFeedSize)
}

func newActions(
	store *catalog.Store,
	gw *gateway.Gateway,
	previews *catalog.PreviewRegistry,
	feed *catalog.Feed,
	logger *slog.Logger,
) *catalog.Actions {
	return catalog.NewActions(store, gw, previews, feed, logger)
}

func newWizardRegistry(cfg *config.Config) *sale.Registry {
	return sale.NewRegistry(cfg.Sessions.WizardTTL)
}

func newCartRegistry(cfg *config.Config) *cart.Registry {
	return cart.NewRegistry(cfg.Sessions.CartTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewSaleService,
			impl.NewCartService,
			impl.NewStoreService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewSaleHandler,
			handler.NewCartHandler,
			handler.NewStoreHandler,
			handler.NewContactHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type sweeperParams struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Carts   *cart.Registry
	Wizards *sale.Registry
}

// startSweepers evicts idle carts and wizards until shutdown.
func startSweepers(params sweeperParams) {
	ctx, cancel := context.WithCancel(params.Ctx)
	interval := params.Config.Sessions.SweepInterval

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go params.Carts.Run(ctx, interval)
			go params.Wizards.Run(ctx, interval)
			params.Logger.Info("Session sweepers started", slog.Duration("interval", interval))

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
