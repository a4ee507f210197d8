package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

var (
	productA = &entity.Product{ID: "a", Name: "Asado", Price: 100, Category: "vacuno", Active: true, Stock: 10}
	productB = &entity.Product{ID: "b", Name: "Bife de chorizo", Price: 50, Category: "vacuno", Active: true, Stock: 3}
	productC = &entity.Product{ID: "c", Name: "Carré de cerdo", Price: 80, Category: "cerdo", Active: true, Stock: 0.5}
)

func lineOf(t *testing.T, w *Wizard, productID string) Line {
	t.Helper()

	for _, line := range w.Lines() {
		if line.ProductID == productID {
			return line
		}
	}
	t.Fatalf("line %s not found", productID)

	return Line{}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{
		productA,
		productB,
		{ID: "x", Name: "Asado inactivo", Active: false, Stock: 5},
		{ID: "y", Name: "Asado agotado", Active: true, Stock: 0},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "no search", search: "", want: []string{"a", "b"}},
		{name: "case insensitive", search: "  ASA ", want: []string{"a"}},
		{name: "no match", search: "pollo", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make([]string, 0)
			for _, p := range Candidates(products, tt.search) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWizard_Toggle(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.NoError(t, w.Toggle(productA))
	require.NoError(t, w.Toggle(productC))

	assert.InDelta(t, 1, lineOf(t, w, "a").Quantity, 1e-9)
	assert.InDelta(t, 100, lineOf(t, w, "a").Subtotal, 1e-9)
	assert.InDelta(t, 0.5, lineOf(t, w, "c").Quantity, 1e-9, "initial quantity is capped at stock")

	require.NoError(t, w.Toggle(productA))
	require.Len(t, w.Lines(), 1)

	require.ErrorIs(t, w.Toggle(&entity.Product{ID: "z", Active: false, Stock: 1}), domainerrors.ErrProductInactive)
	require.ErrorIs(t, w.Toggle(&entity.Product{ID: "z", Active: true, Stock: 0}), domainerrors.ErrOutOfStock)
}

func TestWizard_AdvanceAndBack(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.ErrorIs(t, w.Advance(), domainerrors.ErrEmptySelection)

	require.NoError(t, w.Toggle(productA))
	require.NoError(t, w.Advance())
	assert.Equal(t, StepConfirm, w.View().Step)
	require.ErrorIs(t, w.Advance(), domainerrors.ErrWrongStep)

	w.Back()
	view := w.View()
	assert.Equal(t, StepSelect, view.Step)
	assert.Len(t, view.Lines, 1, "going back keeps the selection")
}

func TestWizard_QuantityClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quantity   float64
		wantQty    float64
		wantRemove bool
	}{
		{name: "within bounds", quantity: 2.5, wantQty: 2.5},
		{name: "below minimum", quantity: 0.2, wantQty: 0.5},
		{name: "above stock", quantity: 7, wantQty: 3},
		{name: "zero removes", quantity: 0, wantRemove: true},
		{name: "negative removes", quantity: -1, wantRemove: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewWizard("w1")
			require.NoError(t, w.Toggle(productB))
			require.NoError(t, w.SetQuantity("b", tt.quantity))

			if tt.wantRemove {
				assert.Empty(t, w.Lines())

				return
			}
			line := lineOf(t, w, "b")
			assert.InDelta(t, tt.wantQty, line.Quantity, 1e-9)
			assert.InDelta(t, tt.wantQty*productB.Price, line.Subtotal, 1e-9)
		})
	}
}

func TestWizard_Step(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.NoError(t, w.Toggle(productB))

	require.NoError(t, w.Step("b", 1))
	assert.InDelta(t, 1.5, lineOf(t, w, "b").Quantity, 1e-9)

	for range 10 {
		require.NoError(t, w.Step("b", 1))
	}
	assert.InDelta(t, 3, lineOf(t, w, "b").Quantity, 1e-9, "stepping up stops at stock")

	w2 := NewWizard("w2")
	require.NoError(t, w2.Toggle(productB))
	require.NoError(t, w2.Step("b", -1))
	assert.InDelta(t, 0.5, lineOf(t, w2, "b").Quantity, 1e-9)
	require.NoError(t, w2.Step("b", -1))
	assert.Empty(t, w2.Lines(), "stepping down to zero removes the line")

	require.ErrorIs(t, w2.Step("b", 1), domainerrors.ErrLineNotFound)
}

func TestWizard_InputAndCommit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inputs  []string
		wantErr bool
		wantQty float64
	}{
		{name: "comma decimal", inputs: []string{"1", "1,", "1,5"}, wantQty: 1.5},
		{name: "dot decimal", inputs: []string{"2.25"}, wantQty: 2.25},
		{name: "empty resets to minimum", inputs: []string{""}, wantQty: 0.5},
		{name: "lone separator resets to minimum", inputs: []string{"."}, wantQty: 0.5},
		{name: "zero clamps to minimum", inputs: []string{"0"}, wantQty: 0.5},
		{name: "above stock clamps", inputs: []string{"12"}, wantQty: 3},
		{name: "letters rejected keep previous buffer", inputs: []string{"2", "2a"}, wantErr: true, wantQty: 2},
		{name: "two separators rejected", inputs: []string{"1.5", "1.5.2"}, wantErr: true, wantQty: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewWizard("w1")
			require.NoError(t, w.Toggle(productB))

			var err error
			for _, text := range tt.inputs {
				err = w.Input("b", text)
			}
			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, w.Commit("b"))
			line := lineOf(t, w, "b")
			assert.InDelta(t, tt.wantQty, line.Quantity, 1e-9)
			assert.Nil(t, line.Input)
		})
	}
}

func TestWizard_CommitWithoutInputKeepsQuantity(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.NoError(t, w.Toggle(productA))
	require.NoError(t, w.SetQuantity("a", 4))
	require.NoError(t, w.Commit("a"))
	assert.InDelta(t, 4, lineOf(t, w, "a").Quantity, 1e-9)
}

func TestWizard_Submit(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.NoError(t, w.Toggle(productA))
	require.NoError(t, w.Toggle(productB))
	require.NoError(t, w.SetQuantity("a", 2))
	require.NoError(t, w.SetQuantity("b", 3))

	_, err := w.Submit(true)
	require.ErrorIs(t, err, domainerrors.ErrWrongStep)

	require.NoError(t, w.Advance())
	_, err = w.Submit(false)
	require.ErrorIs(t, err, domainerrors.ErrNotConfirmed)

	lines, err := w.Submit(true)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ProductID)
	assert.InDelta(t, 2, lines[0].Quantity, 1e-9)

	totals := w.Totals()
	assert.Equal(t, 2, totals.Items)
	assert.InDelta(t, 5, totals.Quantity, 1e-9)
	assert.InDelta(t, 350, totals.Amount, 1e-9)

	w.Reset()
	view := w.View()
	assert.Empty(t, view.Lines)
	assert.Equal(t, StepSelect, view.Step)
}

func TestWizard_SubmitHoldsUntilRelease(t *testing.T) {
	t.Parallel()

	w := NewWizard("w1")
	require.NoError(t, w.Toggle(productA))
	require.NoError(t, w.Advance())

	_, err := w.Submit(true)
	require.NoError(t, err)

	_, err = w.Submit(true)
	require.ErrorIs(t, err, domainerrors.ErrSubmitInProgress)

	w.Release()
	lines, err := w.Submit(true)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	w.Reset()
	_, err = w.Submit(true)
	require.ErrorIs(t, err, domainerrors.ErrWrongStep, "reset returns to selection and frees the wizard")
}
