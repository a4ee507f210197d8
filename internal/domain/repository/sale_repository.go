package repository

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for sale persistence.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrDuplicateSale is returned when a sale id is already taken.
	ErrDuplicateSale = errors.New("sale already exists")
)

// SaleRepository defines sale persistence for a tenant.
type SaleRepository interface {
	// Create writes the sale header and all its items in a single atomic operation.
	Create(ctx context.Context, tenantID string, sale *entity.Sale) error

	// Find returns sales matching query, newest first.
	Find(ctx context.Context, tenantID string, query entity.SalesQuery) ([]*entity.Sale, error)

	// FindWithItems returns a sale header with its items ordered by position.
	FindWithItems(ctx context.Context, tenantID, id string) (*entity.Sale, error)

	// UpdateStatus changes the status of a sale.
	UpdateStatus(ctx context.Context, tenantID, id string, status entity.SaleStatus) error
}
