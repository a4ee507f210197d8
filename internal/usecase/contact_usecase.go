package usecase

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// ContactInput is a contact as entered by the admin. Number may be in any local format.
type ContactInput struct {
	Name   string             `json:"name" validate:"required,max=80"`
	Role   entity.ContactRole `json:"role" validate:"required"`
	Number string             `json:"number" validate:"required"`
}

// ContactUsecase defines the WhatsApp contact directory use cases
type ContactUsecase interface {
	List(ctx context.Context) ([]entity.WhatsAppContact, error)

	// Save replaces the directory and announces numbers that were not present before
	Save(ctx context.Context, inputs []ContactInput) ([]entity.WhatsAppContact, error)

	Add(ctx context.Context, input ContactInput) ([]entity.WhatsAppContact, error)
	Remove(ctx context.Context, number string) ([]entity.WhatsAppContact, error)

	// Link returns the wa.me link of a number
	Link(number string) string
}
