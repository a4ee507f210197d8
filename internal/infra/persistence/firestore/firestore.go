package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/lifecycle"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.Lifecycle

	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client and closes it on stop.
func New(params Params) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

func tenantRef(client *firestore.Client, tenantID string) *firestore.DocumentRef {
	return client.Collection(constants.CollectionTenants).Doc(tenantID)
}

func productsRef(client *firestore.Client, tenantID string) *firestore.CollectionRef {
	return tenantRef(client, tenantID).Collection(constants.CollectionProducts)
}

func salesRef(client *firestore.Client, tenantID string) *firestore.CollectionRef {
	return tenantRef(client, tenantID).Collection(constants.CollectionSales)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
