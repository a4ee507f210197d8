package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel is the GORM-specific struct for the 'tenants' table.
type TenantModel struct {
	ID             string   `gorm:"type:varchar(64);primaryKey"`
	Name           string   `gorm:"type:varchar(255);not null"`
	URL            string   `gorm:"type:varchar(255);uniqueIndex"`
	Logo           string   `gorm:"type:text"`
	Banner         string   `gorm:"type:text"`
	ContactPhone   string   `gorm:"type:varchar(50)"`
	ContactEmail   string   `gorm:"type:varchar(255)"`
	ContactAddress string   `gorm:"type:varchar(255)"`
	Instagram      string   `gorm:"type:varchar(255)"`
	Facebook       string   `gorm:"type:varchar(255)"`
	WhatsApp       string   `gorm:"type:varchar(50)"`
	Hours          []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Contacts []TenantContactModel `gorm:"foreignKey:TenantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// TenantContactModel is the GORM-specific struct for the 'tenant_contacts' table,
// one row per WhatsApp number of the tenant's directory.
type TenantContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_tenant_contacts_number"`
	Number    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_tenant_contacts_number"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(30);not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TenantContactModel) TableName() string {
	return "tenant_contacts"
}
