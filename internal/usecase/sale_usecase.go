package usecase

import (
	"context"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/sale"
)

// DatePreset selects the date window of the sales history.
type DatePreset string

const (
	PresetToday DatePreset = "today"
	PresetWeek  DatePreset = "week"
	PresetMonth DatePreset = "month"
	PresetAll   DatePreset = "all"
)

// IsValid checks if the preset is known.
func (p DatePreset) IsValid() bool {
	switch p {
	case PresetToday, PresetWeek, PresetMonth, PresetAll:
		return true
	default:
		return false
	}
}

// SalesHistoryQuery filters and pages the sales history.
type SalesHistoryQuery struct {
	Preset   DatePreset
	Status   entity.SaleStatus
	Search   string
	Page     int
	PageSize int
}

// SalesPage is one page of the filtered sales history.
type SalesPage struct {
	Sales      []*entity.Sale `json:"sales"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
}

// SalesStats are computed over the date window only.
type SalesStats struct {
	TotalSales     int     `json:"totalSales"`
	TotalAmount    float64 `json:"totalAmount"`
	CompletedSales int     `json:"completedSales"`
	PendingSales   int     `json:"pendingSales"`
	CancelledSales int     `json:"cancelledSales"`
	AverageSale    float64 `json:"averageSale"`
}

// SubmitRequest finishes a wizard.
type SubmitRequest struct {
	Confirmed bool
	Notes     string
	Status    entity.SaleStatus
}

// SaleUsecase defines the in-store sale and sales history use cases
type SaleUsecase interface {
	OpenWizard(ctx context.Context) (*sale.View, error)
	GetWizard(ctx context.Context, id string) (*sale.View, error)
	CloseWizard(ctx context.Context, id string) error

	// Candidates lists the products that can be added to the wizard
	Candidates(ctx context.Context, id, search string) ([]*entity.Product, error)

	Toggle(ctx context.Context, id, productID string) (*sale.View, error)
	Advance(ctx context.Context, id string) (*sale.View, error)
	Back(ctx context.Context, id string) (*sale.View, error)
	SetQuantity(ctx context.Context, id, productID string, quantity float64) (*sale.View, error)
	Step(ctx context.Context, id, productID string, direction int) (*sale.View, error)
	Input(ctx context.Context, id, productID, text string) (*sale.View, error)
	Commit(ctx context.Context, id, productID string) (*sale.View, error)

	// SubmitWizard records the sale and deducts stock
	SubmitWizard(ctx context.Context, id string, req SubmitRequest) (*entity.Sale, error)

	History(ctx context.Context, query SalesHistoryQuery) (*SalesPage, error)
	Stats(ctx context.Context, preset DatePreset) (*SalesStats, error)
	GetSale(ctx context.Context, id string) (*entity.Sale, error)

	// ChangeStatus updates a sale status and reconciles stock
	ChangeStatus(ctx context.Context, id string, next entity.SaleStatus) (*entity.Sale, error)
}
