// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the catalog operations of a tenant.
type ProductRepository interface {
	// FindAll returns every product of the tenant with read defaults applied.
	FindAll(ctx context.Context, tenantID string) ([]*entity.Product, error)

	// FindByID returns a single product.
	FindByID(ctx context.Context, tenantID, id string) (*entity.Product, error)

	// Create persists a new product and returns it with its assigned id.
	Create(ctx context.Context, tenantID string, product *entity.Product) (*entity.Product, error)

	// Update merges patch into the stored product.
	Update(ctx context.Context, tenantID, id string, patch entity.ProductPatch) error

	// Delete permanently removes a product.
	Delete(ctx context.Context, tenantID, id string) error
}
