package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled:
		return true
	default:
		return false
	}
}

// Sale is a recorded sale header. Items is only populated on detail reads.
type Sale struct {
	ID            string      `json:"id"`
	Date          time.Time   `json:"date"`
	TotalAmount   float64     `json:"totalAmount"`
	TotalItems    int         `json:"totalItems"`
	TotalQuantity float64     `json:"totalQuantity"`
	Status        SaleStatus  `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	Items         []*SaleItem `json:"items,omitempty"`
}

// SaleItem is an immutable snapshot of one sold product.
type SaleItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	Category    string  `json:"category"`
}

// SaleLine is the input for one line of a new sale.
type SaleLine struct {
	ProductID   string
	ProductName string
	Quantity    float64
	UnitPrice   float64
	Category    string
}

// SaleTotals are the aggregates derived from a set of lines.
type SaleTotals struct {
	Amount   float64 `json:"amount"`
	Items    int     `json:"items"`
	Quantity float64 `json:"quantity"`
}

// Subtotal returns quantity times unit price, rounded to cents.
func Subtotal(quantity, unitPrice float64) float64 {
	return decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(unitPrice)).
		Round(2).
		InexactFloat64()
}

// ComputeTotals aggregates lines with decimal arithmetic so totals match the item subtotals.
func ComputeTotals(lines []SaleLine) SaleTotals {
	amount := decimal.Zero
	quantity := decimal.Zero
	for _, line := range lines {
		amount = amount.Add(decimal.NewFromFloat(Subtotal(line.Quantity, line.UnitPrice)))
		quantity = quantity.Add(decimal.NewFromFloat(line.Quantity))
	}

	return SaleTotals{
		Amount:   amount.Round(2).InexactFloat64(),
		Items:    len(lines),
		Quantity: quantity.InexactFloat64(),
	}
}

// NewSale builds a sale header and its positional items from lines.
func NewSale(id string, date time.Time, lines []SaleLine, notes string, status SaleStatus) *Sale {
	if !status.IsValid() {
		status = SaleStatusCompleted
	}
	totals := ComputeTotals(lines)
	items := make([]*SaleItem, 0, len(lines))
	for idx, line := range lines {
		items = append(items, &SaleItem{
			ID:          fmt.Sprintf("%d", idx+1),
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    Subtotal(line.Quantity, line.UnitPrice),
			Category:    line.Category,
		})
	}

	return &Sale{
		ID:            id,
		Date:          date,
		TotalAmount:   totals.Amount,
		TotalItems:    totals.Items,
		TotalQuantity: totals.Quantity,
		Status:        status,
		Notes:         notes,
		Items:         items,
	}
}

// SaleID formats the date-and-time token used as a sale id.
func SaleID(t time.Time) string {
	return "sale_" + t.Format("20060102_1504")
}

// SalesQuery filters a sales history read. Zero values mean "no filter".
type SalesQuery struct {
	Limit  int
	Start  *time.Time
	End    *time.Time
	Status SaleStatus
}
