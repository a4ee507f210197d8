// Package persistence selects the repository implementations for the configured driver.
package persistence

import (
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/firestore"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Repositories exposes the selected implementations to the fx graph
type Repositories struct {
	fx.Out

	Products repository.ProductRepository
	Sales    repository.SaleRepository
	Tenants  repository.TenantRepository
}

// New builds the repositories for persistence.driver. Only the selected backend is connected.
func New(params Params) (Repositories, error) {
	driver := constants.PersistenceDriverFirestore
	if params.Config.Persistence != nil && params.Config.Persistence.Driver != "" {
		driver = params.Config.Persistence.Driver
	}

	switch driver {
	case constants.PersistenceDriverFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firestore persistence")

		return Repositories{
			Products: firestore.NewProductRepository(client),
			Sales:    firestore.NewSaleRepository(client),
			Tenants:  firestore.NewTenantRepository(client),
		}, nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL persistence")

		return Repositories{
			Products: postgres.NewProductRepository(db),
			Sales:    postgres.NewSaleRepository(db),
			Tenants:  postgres.NewTenantRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported persistence driver: %s", driver)
	}
}
