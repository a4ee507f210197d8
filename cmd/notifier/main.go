package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/worker"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/worker/handler"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/firebase"
	logs "github.com/LudwingValecillos/VentaCarniceria/internal/infra/log"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/notification"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/webhook"
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
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
			webhook.NewWelcomeWebhook,
		),
	)
}

// newNotificationService uses FCM when Firebase is configured and logs pushes otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured, admin push notifications are disabled")

		return notification.NewNoopService(logger), nil
	}

	app, err := firebase.NewApp(firebase.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	return notification.NewFirebaseService(ctx, app, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
