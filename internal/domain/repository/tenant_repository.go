package repository

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrTenantNotFound is returned when no tenant matches the lookup.
	ErrTenantNotFound = errors.New("tenant not found")
)

// TenantRepository reads tenant configuration and maintains the contact directory.
type TenantRepository interface {
	// FindByID returns the tenant with its contact directory.
	FindByID(ctx context.Context, id string) (*entity.Tenant, error)

	// FindByURL returns the tenant registered for a deployment URL.
	FindByURL(ctx context.Context, url string) (*entity.Tenant, error)

	// ReplaceContacts overwrites the tenant's contact directory.
	ReplaceContacts(ctx context.Context, tenantID string, contacts []entity.WhatsAppContact) error
}
