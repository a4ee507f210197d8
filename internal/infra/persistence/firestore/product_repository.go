package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a Firestore-backed product repository
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) FindAll(ctx context.Context, tenantID string) ([]*entity.Product, error) {
	snaps, err := productsRef(r.client, tenantID).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		products = append(products, productFromData(snap.Ref.ID, snap.Data()))
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	snap, err := productsRef(r.client, tenantID).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get product")
	}

	return productFromData(snap.Ref.ID, snap.Data()), nil
}

func (r *productRepository) Create(ctx context.Context, tenantID string, product *entity.Product) (*entity.Product, error) {
	ref := productsRef(r.client, tenantID).NewDoc()
	if _, err := ref.Create(ctx, productToData(product)); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	created := product.Clone()
	created.ID = ref.ID

	return created, nil
}

func (r *productRepository) Update(ctx context.Context, tenantID, id string, patch entity.ProductPatch) error {
	if _, err := productsRef(r.client, tenantID).Doc(id).Update(ctx, patchUpdates(patch)); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrProductNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := productsRef(r.client, tenantID).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}
