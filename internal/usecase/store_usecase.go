package usecase

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// StoreSettings is the static storefront configuration.
type StoreSettings struct {
	Name              string   `json:"name"`
	WhatsApp          string   `json:"whatsapp"`
	CurrencyCode      string   `json:"currencyCode"`
	CurrencySymbol    string   `json:"currencySymbol"`
	PriceLocale       string   `json:"priceLocale"`
	PriceDecimals     int      `json:"priceDecimals"`
	DefaultQuantity   float64  `json:"defaultQuantity"`
	QuantityStep      float64  `json:"quantityStep"`
	Categories        []string `json:"categories"`
	PaymentMethods    []string `json:"paymentMethods"`
	LowStockThreshold float64  `json:"lowStockThreshold"`
	MaxUploadSize     string   `json:"maxUploadSize"`
}

// StoreUsecase defines the tenant display configuration use cases
type StoreUsecase interface {
	// Config returns the tenant display data
	Config(ctx context.Context) (*entity.Tenant, error)

	Settings() *StoreSettings

	// ContactQR returns a PNG QR code of the store's WhatsApp link
	ContactQR(ctx context.Context) ([]byte, error)
}
