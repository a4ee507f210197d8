// Package catalog holds the in-memory product read model of the tenant and the
// optimistic actions that mutate it ahead of the remote store.
package catalog

import (
	"slices"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// State is the product list plus its load status.
type State struct {
	Products    []*entity.Product `json:"products"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	Initialized bool              `json:"initialized"`
}

// Action is a state transition understood by Reduce.
type Action interface {
	isAction()
}

// FetchStart marks a catalog load in progress.
type FetchStart struct{}

// FetchSuccess replaces the product list with a freshly loaded one.
type FetchSuccess struct {
	Products []*entity.Product
}

// FetchFailure records a failed load.
type FetchFailure struct {
	Message string
}

// AddProduct appends a product, replacing any entry with the same id.
type AddProduct struct {
	Product *entity.Product
}

// RestoreProduct puts a product back at index, used to undo a removal.
type RestoreProduct struct {
	Product *entity.Product
	Index   int
}

// RemoveProduct drops the product with ID.
type RemoveProduct struct {
	ID string
}

// ReplaceProduct swaps the entry with ID for Product, whose id may differ.
type ReplaceProduct struct {
	ID      string
	Product *entity.Product
}

// PatchProduct shallow-merges Patch onto the entry with ID.
type PatchProduct struct {
	ID    string
	Patch entity.ProductPatch
}

func (FetchStart) isAction()     {}
func (FetchSuccess) isAction()   {}
func (FetchFailure) isAction()   {}
func (AddProduct) isAction()     {}
func (RestoreProduct) isAction() {}
func (RemoveProduct) isAction()  {}
func (ReplaceProduct) isAction() {}
func (PatchProduct) isAction()   {}

// Reduce returns the state that results from applying action to state.
// Neither state nor the products it references are modified.
func Reduce(state State, action Action) State {
	next := state
	next.Products = slices.Clone(state.Products)

	switch a := action.(type) {
	case FetchStart:
		next.Loading = true
		next.Error = ""
	case FetchSuccess:
		next.Products = dedupe(a.Products)
		next.Loading = false
		next.Error = ""
		next.Initialized = true
	case FetchFailure:
		next.Loading = false
		next.Error = a.Message
		next.Initialized = true
	case AddProduct:
		if a.Product == nil {
			return state
		}
		product := a.Product.Clone()
		if idx := indexOf(next.Products, product.ID); idx >= 0 {
			next.Products[idx] = product
		} else {
			next.Products = append(next.Products, product)
		}
	case RestoreProduct:
		if a.Product == nil || indexOf(next.Products, a.Product.ID) >= 0 {
			return state
		}
		idx := min(max(a.Index, 0), len(next.Products))
		next.Products = slices.Insert(next.Products, idx, a.Product.Clone())
	case RemoveProduct:
		next.Products = slices.DeleteFunc(next.Products, func(p *entity.Product) bool {
			return p.ID == a.ID
		})
	case ReplaceProduct:
		idx := indexOf(next.Products, a.ID)
		if idx < 0 || a.Product == nil {
			return state
		}
		product := a.Product.Clone()
		next.Products[idx] = product
		if product.ID != a.ID {
			// The replacement id may already be present from a concurrent fetch.
			next.Products = slices.DeleteFunc(next.Products, func(p *entity.Product) bool {
				return p.ID == product.ID && p != product
			})
		}
	case PatchProduct:
		idx := indexOf(next.Products, a.ID)
		if idx < 0 {
			return state
		}
		product := next.Products[idx].Clone()
		a.Patch.Apply(product)
		next.Products[idx] = product
	default:
		return state
	}

	return next
}

func indexOf(products []*entity.Product, id string) int {
	return slices.IndexFunc(products, func(p *entity.Product) bool {
		return p.ID == id
	})
}

// dedupe keeps the last occurrence of every id, in first-seen order.
func dedupe(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product == nil {
			continue
		}
		product = product.Clone()
		if idx := indexOf(out, product.ID); idx >= 0 {
			out[idx] = product

			continue
		}
		out = append(out, product)
	}

	return out
}
