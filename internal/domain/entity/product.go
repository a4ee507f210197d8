package entity

import "time"

// Product defaults applied when a stored record omits a field.
const (
	DefaultProductName     = "Producto sin nombre"
	DefaultProductCategory = "general"
	// DefaultInitialStock is the stock assigned to newly created products.
	DefaultInitialStock = 10.0
)

// Product is a catalog entry of a tenant.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Active    bool      `json:"active"`
	Offer     bool      `json:"offer"`
	Stock     float64   `json:"stock"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Clone returns a shallow copy, which is a full copy since Product holds no references.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}

// InStock reports whether the product can be sold.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductPatch carries the fields of a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Active   *bool    `json:"active,omitempty"`
	Offer    *bool    `json:"offer,omitempty"`
	Stock    *float64 `json:"stock,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Category == nil && p.Image == nil &&
		p.Active == nil && p.Offer == nil && p.Stock == nil
}

// Apply shallow-merges the patch onto product.
func (p ProductPatch) Apply(product *Product) {
	if product == nil {
		return
	}
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Active != nil {
		product.Active = *p.Active
	}
	if p.Offer != nil {
		product.Offer = *p.Offer
	}
	if p.Stock != nil {
		product.Stock = ClampStock(*p.Stock)
	}
}

// NewProduct holds the fields supplied when creating a product.
type NewProduct struct {
	Name     string
	Price    float64
	Category string
	Active   *bool
	Offer    bool
	Stock    *float64
}

// Build returns the product record described by the fields with creation defaults applied.
func (n NewProduct) Build(id, image string, now time.Time) *Product {
	product := &Product{
		ID:        id,
		Name:      n.Name,
		Price:     n.Price,
		Category:  n.Category,
		Image:     image,
		Active:    true,
		Offer:     n.Offer,
		Stock:     DefaultInitialStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if n.Active != nil {
		product.Active = *n.Active
	}
	if n.Stock != nil {
		product.Stock = ClampStock(*n.Stock)
	}
	if product.Category == "" {
		product.Category = DefaultProductCategory
	}

	return product
}

// ClampStock keeps stock values non-negative.
func ClampStock(stock float64) float64 {
	if stock < 0 {
		return 0
	}

	return stock
}

// ImageUpload is an image file received from an admin.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsEmpty reports whether the upload carries no bytes.
func (u *ImageUpload) IsEmpty() bool {
	return u == nil || len(u.Data) == 0
}
