package usecase

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// ProductFilter narrows the public catalog listing.
type ProductFilter struct {
	Category  string
	Query     string
	OfferOnly bool
}

// CatalogView is the catalog as currently held in memory.
type CatalogView struct {
	Products    []*entity.Product `json:"products"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	Initialized bool              `json:"initialized"`
}

// StockAddition is a restock request for one product.
type StockAddition struct {
	ProductID string `json:"productId" validate:"required"`
	Amount    int    `json:"amount"`
}

// StockAdditionResult summarizes a restock batch.
type StockAdditionResult struct {
	Updated []*entity.Product `json:"updated"`
	Failed  []string          `json:"failed"`
}

// CatalogUsecase defines the product catalog use cases
type CatalogUsecase interface {
	// ListProducts returns the active products visible to customers
	ListProducts(ctx context.Context, filter ProductFilter) (*CatalogView, error)

	// ListAll returns every product, including inactive ones, for the admin panel
	ListAll(ctx context.Context) (*CatalogView, error)

	// Refresh reloads the catalog from the store, skipping the read cache
	Refresh(ctx context.Context) (*CatalogView, error)

	CreateProduct(ctx context.Context, fields entity.NewProduct, image *entity.ImageUpload) (*entity.Product, error)
	ToggleStatus(ctx context.Context, id string) (*entity.Product, error)
	ToggleOffer(ctx context.Context, id string) (*entity.Product, error)
	UpdatePrice(ctx context.Context, id string, price float64) (*entity.Product, error)
	UpdateName(ctx context.Context, id, name string) (*entity.Product, error)
	UpdateStock(ctx context.Context, id string, stock float64) (*entity.Product, error)
	UpdateImage(ctx context.Context, id string, image *entity.ImageUpload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// AddStock adds whole units to several products
	AddStock(ctx context.Context, additions []StockAddition) (*StockAdditionResult, error)

	// Preview serves a local image shown while an upload is in flight
	Preview(ref string) (*entity.ImageUpload, error)

	// Notifications returns admin notifications newer than seq
	Notifications(seq uint64) []catalog.Notification
}
