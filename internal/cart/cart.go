// Package cart implements the customer shopping cart and the WhatsApp order message built from it.
package cart

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

const (
	// FirstQuantity is the quantity of a product the first time it is added.
	FirstQuantity = 1.0
	// RepeatIncrement is added when a product already in the cart is added again.
	RepeatIncrement = 0.5
)

// Summary is a read-only copy of a cart.
type Summary struct {
	ID            string            `json:"id"`
	Items         []entity.CartItem `json:"items"`
	Total         float64           `json:"total"`
	TotalQuantity float64           `json:"totalQuantity"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Cart is a customer's product selection. It is safe for concurrent use.
type Cart struct {
	id string

	mu        sync.Mutex
	items     []*entity.CartItem
	updatedAt time.Time
}

func New(id string) *Cart {
	return &Cart{id: id, updatedAt: time.Now()}
}

func (c *Cart) ID() string {
	return c.id
}

// Add puts one kilogram of the product in the cart, or half a kilogram more if it is already there.
func (c *Cart) Add(product *entity.Product) error {
	if product == nil {
		return domainerrors.ErrProductNotFound
	}
	if !product.Active {
		return domainerrors.ErrProductInactive
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.touch()

	if idx := c.indexOf(product.ID); idx >= 0 {
		item := c.items[idx]
		item.Quantity = addQuantity(item.Quantity, RepeatIncrement)
		// Keep the snapshot current with the catalog.
		item.Name = product.Name
		item.Price = product.Price
		item.Image = product.Image

		return nil
	}

	c.items = append(c.items, &entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Image:     product.Image,
		Quantity:  FirstQuantity,
	})

	return nil
}

// SetQuantity sets the quantity of an item. A non-positive quantity removes it.
func (c *Cart) SetQuantity(productID string, quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return domainerrors.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrLineNotFound
	}
	defer c.touch()

	if quantity <= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)

		return nil
	}
	c.items[idx].Quantity = quantity

	return nil
}

// Remove drops an item. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(productID); idx >= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
		c.touch()
	}
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.copyItems()
}

// Total returns the sum of price times quantity over all items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Total(c.copyItems())
}

// TotalQuantity returns the sum of quantities.
func (c *Cart) TotalQuantity() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return TotalQuantity(c.copyItems())
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items) == 0
}

// Summary returns a snapshot of the cart with its totals.
func (c *Cart) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.copyItems()

	return Summary{
		ID:            c.id,
		Items:         items,
		Total:         Total(items),
		TotalQuantity: TotalQuantity(items),
		UpdatedAt:     c.updatedAt,
	}
}

// Total returns the order amount of items.
func Total(items []entity.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(entity.Subtotal(item.Quantity, item.Price)))
	}

	return total.Round(2).InexactFloat64()
}

// TotalQuantity returns the summed quantity of items.
func TotalQuantity(items []entity.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Quantity))
	}

	return total.InexactFloat64()
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(item *entity.CartItem) bool {
		return item.ProductID == productID
	})
}

func (c *Cart) copyItems() []entity.CartItem {
	out := make([]entity.CartItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, *item)
	}

	return out
}

func (c *Cart) touch() {
	c.updatedAt = time.Now()
}

func addQuantity(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}
