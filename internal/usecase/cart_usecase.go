package usecase

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// Checkout is the WhatsApp order produced from a cart.
type Checkout struct {
	Message string  `json:"message"`
	Link    string  `json:"link"`
	Total   float64 `json:"total"`
}

// CartUsecase defines the customer cart use cases
type CartUsecase interface {
	Open(ctx context.Context) (*cart.Summary, error)
	Get(ctx context.Context, id string) (*cart.Summary, error)
	AddItem(ctx context.Context, id, productID string) (*cart.Summary, error)
	SetQuantity(ctx context.Context, id, productID string, quantity float64) (*cart.Summary, error)
	RemoveItem(ctx context.Context, id, productID string) (*cart.Summary, error)

	// Checkout composes the order message and discards the cart
	Checkout(ctx context.Context, id string, customer entity.CustomerInfo) (*Checkout, error)
}
