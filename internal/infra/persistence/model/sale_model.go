package model

import (
	"time"
)

// SaleModel is the GORM-specific struct for the 'sales' table. Sale ids are only unique per tenant.
type SaleModel struct {
	TenantID      string          `gorm:"type:varchar(64);primaryKey"`
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Date          time.Time       `gorm:"not null;index:idx_sales_tenant_date"`
	TotalAmount   float64         `gorm:"type:numeric(14,2);not null"`
	TotalItems    int             `gorm:"not null"`
	TotalQuantity float64         `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	Notes         *string         `gorm:"type:text"`
	Items         []SaleItemModel `gorm:"foreignKey:TenantID,SaleID;references:TenantID,ID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is the GORM-specific struct for the 'sale_items' table.
// Position is the 1-based line number that doubles as the item id.
type SaleItemModel struct {
	TenantID    string    `gorm:"type:varchar(64);primaryKey"`
	SaleID      string    `gorm:"type:varchar(64);primaryKey"`
	Position    int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID   string    `gorm:"type:varchar(64);not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    float64   `gorm:"type:numeric(10,2);not null"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null"`
	Subtotal    float64   `gorm:"type:numeric(14,2);not null"`
	Category    string    `gorm:"type:varchar(100);not null;default:'general'"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SaleItemModel) TableName() string {
	return "sale_items"
}
