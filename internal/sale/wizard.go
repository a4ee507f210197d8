// Package sale implements the in-store sale wizard and the stock effects of sale status changes.
package sale

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

// Step is the wizard stage.
type Step string

const (
	StepSelect  Step = "select"
	StepConfirm Step = "confirm"
)

const (
	// QuantityStep is the increment of the quantity stepper, in kilograms.
	QuantityStep = 0.5
	// MinQuantity is the smallest quantity a selected line can hold.
	MinQuantity = 0.5
)

var quantityInput = regexp.MustCompile(`^[0-9]*[.,]?[0-9]*$`)

// Line is one selected product in the wizard.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unitPrice"`
	Stock     float64 `json:"stock"`
	Quantity  float64 `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	// Input is the raw text being typed for the quantity, if any.
	Input *string `json:"input,omitempty"`
}

// View is a read-only copy of the wizard state.
type View struct {
	ID        string            `json:"id"`
	Step      Step              `json:"step"`
	Lines     []Line            `json:"lines"`
	Totals    entity.SaleTotals `json:"totals"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Wizard is the two-step sale form: select products, then confirm quantities and submit.
// It is safe for concurrent use.
type Wizard struct {
	id string

	mu         sync.Mutex
	step       Step
	lines      []*Line
	submitting bool
	updatedAt  time.Time
	now        func() time.Time
}

func NewWizard(id string) *Wizard {
	w := &Wizard{id: id, step: StepSelect, now: time.Now}
	w.updatedAt = w.now()

	return w
}

func (w *Wizard) ID() string {
	return w.id
}

// Candidates returns the products that can be sold, filtered by a
// case-insensitive name search.
func Candidates(products []*entity.Product, search string) []*entity.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product == nil || !product.Active || !product.InStock() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		out = append(out, product)
	}

	return out
}

// Toggle selects the product, or deselects it when already selected.
func (w *Wizard) Toggle(product *entity.Product) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.touch()

	if idx := w.indexOf(product.ID); idx >= 0 {
		w.lines = slices.Delete(w.lines, idx, idx+1)

		return nil
	}
	if !product.Active {
		return domainerrors.ErrProductInactive
	}
	if !product.InStock() {
		return domainerrors.ErrOutOfStock
	}

	line := &Line{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		UnitPrice: product.Price,
		Stock:     product.Stock,
	}
	line.set(min(1, product.Stock))
	w.lines = append(w.lines, line)

	return nil
}

// Advance moves from selection to confirmation.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelect {
		return domainerrors.ErrWrongStep
	}
	if len(w.lines) == 0 {
		return domainerrors.ErrEmptySelection
	}
	w.step = StepConfirm
	w.touch()

	return nil
}

// Back returns to selection keeping the selected lines.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.step = StepSelect
	w.touch()
}

// Step moves the quantity of a line by one stepper increment in the sign of direction.
// A line reaching zero is removed.
func (w *Wizard) Step(productID string, direction int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := w.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrLineNotFound
	}
	delta := QuantityStep
	if direction < 0 {
		delta = -QuantityStep
	}
	w.setQuantity(idx, w.lines[idx].Quantity+delta)

	return nil
}

// SetQuantity sets the quantity of a line. A non-positive quantity removes the line.
func (w *Wizard) SetQuantity(productID string, quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return domainerrors.ErrInvalidQuantity
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	idx := w.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrLineNotFound
	}
	w.setQuantity(idx, quantity)

	return nil
}

// Input records the text typed into a quantity field. Text that could never
// become a quantity is rejected and the previous buffer is kept.
func (w *Wizard) Input(productID, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := w.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrLineNotFound
	}
	if !quantityInput.MatchString(text) {
		return domainerrors.ErrInvalidQuantity
	}
	w.lines[idx].Input = &text
	w.touch()

	return nil
}

// Commit parses the typed quantity of a line and applies it. Unparseable or empty
// input falls back to the minimum quantity.
func (w *Wizard) Commit(productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := w.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrLineNotFound
	}
	line := w.lines[idx]
	if line.Input == nil {
		return nil
	}

	quantity, err := strconv.ParseFloat(strings.ReplaceAll(*line.Input, ",", "."), 64)
	if err != nil || math.IsNaN(quantity) {
		quantity = MinQuantity
	}
	line.Input = nil
	line.set(clampQuantity(quantity, line.Stock))
	w.touch()

	return nil
}

// Lines returns a copy of the selected lines.
func (w *Wizard) Lines() []Line {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.copyLines()
}

// Totals returns the aggregates of the current selection.
func (w *Wizard) Totals() entity.SaleTotals {
	w.mu.Lock()
	defer w.mu.Unlock()

	return entity.ComputeTotals(w.saleLines())
}

// Submit returns the sale lines to record. The wizard must be on the confirm step
// and the operator must have confirmed. A successful call holds the wizard until
// Release or Reset; a second Submit meanwhile fails with ErrSubmitInProgress.
func (w *Wizard) Submit(confirmed bool) ([]entity.SaleLine, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return nil, domainerrors.ErrSubmitInProgress
	}
	if w.step != StepConfirm {
		return nil, domainerrors.ErrWrongStep
	}
	if !confirmed {
		return nil, domainerrors.ErrNotConfirmed
	}
	if len(w.lines) == 0 {
		return nil, domainerrors.ErrEmptySelection
	}
	w.submitting = true

	return w.saleLines(), nil
}

// Release lets a failed submission be retried.
func (w *Wizard) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
}

// Reset clears the selection and returns to the first step.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	w.lines = nil
	w.step = StepSelect
	w.touch()
}

// View returns a snapshot of the wizard.
func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	return View{
		ID:        w.id,
		Step:      w.step,
		Lines:     w.copyLines(),
		Totals:    entity.ComputeTotals(w.saleLines()),
		UpdatedAt: w.updatedAt,
	}
}

func (w *Wizard) setQuantity(idx int, quantity float64) {
	defer w.touch()

	if quantity <= 0 {
		w.lines = slices.Delete(w.lines, idx, idx+1)

		return
	}
	line := w.lines[idx]
	line.Input = nil
	line.set(clampQuantity(quantity, line.Stock))
}

func (w *Wizard) indexOf(productID string) int {
	return slices.IndexFunc(w.lines, func(l *Line) bool {
		return l.ProductID == productID
	})
}

func (w *Wizard) copyLines() []Line {
	out := make([]Line, 0, len(w.lines))
	for _, line := range w.lines {
		cp := *line
		if line.Input != nil {
			input := *line.Input
			cp.Input = &input
		}
		out = append(out, cp)
	}

	return out
}

func (w *Wizard) saleLines() []entity.SaleLine {
	out := make([]entity.SaleLine, 0, len(w.lines))
	for _, line := range w.lines {
		out = append(out, entity.SaleLine{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Category:    line.Category,
		})
	}

	return out
}

func (w *Wizard) touch() {
	w.updatedAt = w.now()
}

func (l *Line) set(quantity float64) {
	l.Quantity = quantity
	l.Subtotal = entity.Subtotal(quantity, l.UnitPrice)
}

// clampQuantity bounds a positive quantity to [MinQuantity, stock].
func clampQuantity(quantity, stock float64) float64 {
	return min(max(quantity, MinQuantity), stock)
}
