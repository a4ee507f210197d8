package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	TenantID  string    `gorm:"type:varchar(64);not null;index:idx_products_tenant"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null;default:0;check:chk_products_price,price >= 0"`
	Category  string    `gorm:"type:varchar(100);not null;default:'general'"`
	Image     string    `gorm:"type:text;not null;default:''"`
	Active    bool      `gorm:"not null;default:true"`
	Offer     bool      `gorm:"not null;default:false"`
	Stock     float64   `gorm:"type:numeric(10,2);not null;default:0;check:chk_products_stock,stock >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
