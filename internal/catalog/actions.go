package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

// TempIDPrefix marks products that exist only locally until their creation is confirmed.
const TempIDPrefix = "temp-"

// Remote is the persistence surface the actions write through.
type Remote interface {
	FetchCatalog(ctx context.Context) ([]*entity.Product, error)
	FetchCatalogFresh(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, fields entity.NewProduct, image *entity.ImageUpload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, patch entity.ProductPatch) error
	UpdateProductImage(ctx context.Context, id, oldURL string, image *entity.ImageUpload) (string, error)
	DeleteProduct(ctx context.Context, id, imageURL string) error
}

// Actions are the catalog mutations. Each one updates the Store immediately and
// undoes the change when the remote write fails.
type Actions struct {
	store    *Store
	remote   Remote
	previews *PreviewRegistry
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewActions(
	store *Store,
	remote Remote,
	previews *PreviewRegistry,
	notifier Notifier,
	logger *slog.Logger,
) *Actions {
	return &Actions{
		store:    store,
		remote:   remote,
		previews: previews,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Store returns the store the actions mutate.
func (a *Actions) Store() *Store {
	return a.store
}

// Fetch loads the catalog into the store.
func (a *Actions) Fetch(ctx context.Context) error {
	return a.fetch(ctx, a.remote.FetchCatalog)
}

// Refresh loads the catalog bypassing any read cache.
func (a *Actions) Refresh(ctx context.Context) error {
	return a.fetch(ctx, a.remote.FetchCatalogFresh)
}

func (a *Actions) fetch(ctx context.Context, load func(context.Context) ([]*entity.Product, error)) error {
	a.store.Dispatch(FetchStart{})

	products, err := load(ctx)
	if err != nil {
		a.store.Dispatch(FetchFailure{Message: err.Error()})
		a.notify(ctx, LevelError, "", "Error al cargar los productos")

		return err
	}
	a.store.Dispatch(FetchSuccess{Products: products})

	return nil
}

// ToggleStatus flips the active flag of the product.
func (a *Actions) ToggleStatus(ctx context.Context, id string) (Outcome, error) {
	return updateField(ctx, a, id, "el estado",
		func(p *entity.Product) bool { return p.Active },
		func(current bool) bool { return !current },
		func(v bool) entity.ProductPatch { return entity.ProductPatch{Active: &v} },
	)
}

// ToggleOffer flips the offer flag of the product.
func (a *Actions) ToggleOffer(ctx context.Context, id string) (Outcome, error) {
	return updateField(ctx, a, id, "la oferta",
		func(p *entity.Product) bool { return p.Offer },
		func(current bool) bool { return !current },
		func(v bool) entity.ProductPatch { return entity.ProductPatch{Offer: &v} },
	)
}

// UpdatePrice sets the product price. Negative prices are rejected before any change.
func (a *Actions) UpdatePrice(ctx context.Context, id string, price float64) (Outcome, error) {
	if price < 0 {
		return OutcomeSkipped, domainerrors.ErrInvalidPrice
	}

	return updateField(ctx, a, id, "el precio",
		func(p *entity.Product) float64 { return p.Price },
		func(float64) float64 { return price },
		func(v float64) entity.ProductPatch { return entity.ProductPatch{Price: &v} },
	)
}

// UpdateName sets the product name. Blank names are rejected before any change.
func (a *Actions) UpdateName(ctx context.Context, id, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return OutcomeSkipped, domainerrors.ErrInvalidName
	}

	return updateField(ctx, a, id, "el nombre",
		func(p *entity.Product) string { return p.Name },
		func(string) string { return name },
		func(v string) entity.ProductPatch { return entity.ProductPatch{Name: &v} },
	)
}

// UpdateStock sets the product stock, clamped at zero.
func (a *Actions) UpdateStock(ctx context.Context, id string, stock float64) (Outcome, error) {
	stock = entity.ClampStock(stock)

	return updateField(ctx, a, id, "el stock",
		func(p *entity.Product) float64 { return p.Stock },
		func(float64) float64 { return stock },
		func(v float64) entity.ProductPatch { return entity.ProductPatch{Stock: &v} },
	)
}

// updateField runs a single-field optimistic update. The rollback restores the
// previous value only while the field still holds the value this call wrote.
func updateField[T comparable](
	ctx context.Context,
	a *Actions,
	id string,
	label string,
	get func(*entity.Product) T,
	next func(current T) T,
	patch func(T) entity.ProductPatch,
) (Outcome, error) {
	product, ok := a.store.Product(id)
	if !ok {
		return OutcomeSkipped, nil
	}
	current := get(product)

	outcome, err := ApplyOptimistic(ctx, OptimisticOp[T]{
		Current: current,
		Next:    next(current),
		Apply: func(value T) {
			a.store.Dispatch(PatchProduct{ID: id, Patch: patch(value)})
		},
		Write: func(ctx context.Context, value T) (T, error) {
			return value, a.remote.UpdateProduct(ctx, id, patch(value))
		},
		Rollback: func(current, next T) {
			a.store.Mutate(id, func(p *entity.Product) Action {
				if get(p) != next {
					return nil
				}

				return PatchProduct{ID: id, Patch: patch(current)}
			})
		},
	})
	if err != nil {
		a.notify(ctx, LevelError, id, fmt.Sprintf("Error al actualizar %s", label))
		a.log(ctx).Warn("Optimistic update rolled back",
			slog.String("product_id", id),
			slog.String("field", label),
			slog.Any("error", err),
		)
	}

	return outcome, err
}

// UpdateImage shows the uploaded image as a preview, uploads it and swaps the
// preview for the hosted URL.
func (a *Actions) UpdateImage(ctx context.Context, id string, upload *entity.ImageUpload) (Outcome, error) {
	if upload.IsEmpty() {
		return OutcomeSkipped, domainerrors.ErrImageRequired
	}
	product, ok := a.store.Product(id)
	if !ok {
		return OutcomeSkipped, nil
	}

	ref := a.previews.Acquire(upload)
	defer a.previews.Release(ref)

	swap := func(from, to string) {
		a.store.Mutate(id, func(p *entity.Product) Action {
			if p.Image != from {
				return nil
			}

			return PatchProduct{ID: id, Patch: entity.ProductPatch{Image: &to}}
		})
	}

	outcome, err := ApplyOptimistic(ctx, OptimisticOp[string]{
		Current: product.Image,
		Next:    ref,
		Apply: func(value string) {
			a.store.Dispatch(PatchProduct{ID: id, Patch: entity.ProductPatch{Image: &value}})
		},
		Write: func(ctx context.Context, _ string) (string, error) {
			return a.remote.UpdateProductImage(ctx, id, product.Image, upload)
		},
		Rollback: func(current, next string) {
			swap(next, current)
		},
		Reconcile: func(url string) {
			swap(ref, url)
		},
	})
	if err != nil {
		a.notify(ctx, LevelError, id, "Error al actualizar la imagen")

		return outcome, err
	}
	a.notify(ctx, LevelSuccess, id, "Imagen actualizada")

	return outcome, nil
}

// Delete removes the product and re-inserts it at its position if the remote delete fails.
func (a *Actions) Delete(ctx context.Context, id string) (Outcome, error) {
	product, index, ok := a.store.productAt(id)
	if !ok {
		return OutcomeSkipped, nil
	}

	outcome, err := ApplyOptimistic(ctx, OptimisticOp[*entity.Product]{
		Current: product,
		Apply: func(value *entity.Product) {
			if value == nil {
				a.store.Dispatch(RemoveProduct{ID: id})

				return
			}
			a.store.Dispatch(RestoreProduct{Product: value, Index: index})
		},
		Write: func(ctx context.Context, _ *entity.Product) (*entity.Product, error) {
			return nil, a.remote.DeleteProduct(ctx, id, product.Image)
		},
	})
	if err != nil {
		a.notify(ctx, LevelError, id, "Error al eliminar el producto")

		return outcome, err
	}
	a.notify(ctx, LevelSuccess, id, "Producto eliminado")

	return outcome, nil
}

// Add inserts a temporary product with a preview image and replaces it with the
// stored record once creation succeeds.
func (a *Actions) Add(ctx context.Context, fields entity.NewProduct, upload *entity.ImageUpload) (*entity.Product, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	switch {
	case fields.Name == "":
		return nil, domainerrors.ErrInvalidName
	case fields.Price < 0:
		return nil, domainerrors.ErrInvalidPrice
	case upload.IsEmpty():
		return nil, domainerrors.ErrImageRequired
	}

	ref := a.previews.Acquire(upload)
	defer a.previews.Release(ref)

	tempID := TempIDPrefix + uuid.NewString()
	temp := fields.Build(tempID, ref, a.now())

	var created *entity.Product
	_, err := ApplyOptimistic(ctx, OptimisticOp[*entity.Product]{
		Next: temp,
		Apply: func(value *entity.Product) {
			if value == nil {
				a.store.Dispatch(RemoveProduct{ID: tempID})

				return
			}
			a.store.Dispatch(AddProduct{Product: value})
		},
		Write: func(ctx context.Context, _ *entity.Product) (*entity.Product, error) {
			stored, err := a.remote.CreateProduct(ctx, fields, upload)
			if err == nil && stored == nil {
				err = fmt.Errorf("create product: empty result")
			}

			return stored, err
		},
		Reconcile: func(stored *entity.Product) {
			created = stored
			a.store.Dispatch(ReplaceProduct{ID: tempID, Product: stored})
		},
	})
	if err != nil {
		a.notify(ctx, LevelError, "", "Error al agregar el producto")

		return nil, err
	}
	a.notify(ctx, LevelSuccess, created.ID, "Producto agregado")

	return created.Clone(), nil
}

func (a *Actions) notify(ctx context.Context, level Level, productID, message string) {
	if a.notifier == nil {
		return
	}
	a.notifier.Notify(ctx, Notification{
		Level:     level,
		Message:   message,
		ProductID: productID,
		CreatedAt: a.now(),
	})
}

func (a *Actions) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}
