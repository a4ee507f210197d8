package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

const (
	minStockAddition = 1
	maxStockAddition = 999
)

type catalogService struct {
	actions  *catalog.Actions
	store    *catalog.Store
	previews *catalog.PreviewRegistry
	feed     *catalog.Feed
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	actions *catalog.Actions,
	previews *catalog.PreviewRegistry,
	feed *catalog.Feed,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		actions:  actions,
		store:    actions.Store(),
		previews: previews,
		feed:     feed,
		logger:   logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter usecase.ProductFilter) (*usecase.CatalogView, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	state := s.store.Snapshot()

	category := strings.ToLower(strings.TrimSpace(filter.Category))
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	products := make([]*entity.Product, 0, len(state.Products))
	for _, product := range state.Products {
		switch {
		case !product.Active:
			continue
		case category != "" && category != "all" && strings.ToLower(product.Category) != category:
			continue
		case query != "" && !strings.Contains(strings.ToLower(product.Name), query):
			continue
		case filter.OfferOnly && !product.Offer:
			continue
		}
		products = append(products, product)
	}

	return viewOf(state, products), nil
}

func (s *catalogService) ListAll(ctx context.Context) (*usecase.CatalogView, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	state := s.store.Snapshot()

	return viewOf(state, state.Products), nil
}

func (s *catalogService) Refresh(ctx context.Context) (*usecase.CatalogView, error) {
	if err := s.actions.Refresh(ctx); err != nil {
		return nil, toAppError(err)
	}
	state := s.store.Snapshot()

	return viewOf(state, state.Products), nil
}

func (s *catalogService) CreateProduct(ctx context.Context, fields entity.NewProduct, image *entity.ImageUpload) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)

	product, err := s.actions.Add(ctx, fields, image)
	if err != nil {
		return nil, toAppError(err)
	}

	return product, nil
}

func (s *catalogService) ToggleStatus(ctx context.Context, id string) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.ToggleStatus(ctx, id)

	return s.result(id, outcome, err)
}

func (s *catalogService) ToggleOffer(ctx context.Context, id string) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.ToggleOffer(ctx, id)

	return s.result(id, outcome, err)
}

func (s *catalogService) UpdatePrice(ctx context.Context, id string, price float64) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.UpdatePrice(ctx, id, price)

	return s.result(id, outcome, err)
}

func (s *catalogService) UpdateName(ctx context.Context, id, name string) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.UpdateName(ctx, id, name)

	return s.result(id, outcome, err)
}

func (s *catalogService) UpdateStock(ctx context.Context, id string, stock float64) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.UpdateStock(ctx, id, stock)

	return s.result(id, outcome, err)
}

func (s *catalogService) UpdateImage(ctx context.Context, id string, image *entity.ImageUpload) (*entity.Product, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	outcome, err := s.actions.UpdateImage(ctx, id, image)

	return s.result(id, outcome, err)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	ensureCatalog(ctx, s.actions, s.logger)

	outcome, err := s.actions.Delete(ctx, id)
	if err != nil {
		return toAppError(err)
	}
	if outcome == catalog.OutcomeSkipped {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// AddStock clamps every amount to whole units in [1, 999] and adds it to the
// current stock. Entries without a positive amount are ignored.
func (s *catalogService) AddStock(ctx context.Context, additions []usecase.StockAddition) (*usecase.StockAdditionResult, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	result := &usecase.StockAdditionResult{
		Updated: make([]*entity.Product, 0, len(additions)),
		Failed:  make([]string, 0),
	}
	for _, addition := range additions {
		if addition.Amount <= 0 {
			continue
		}
		amount := min(max(addition.Amount, minStockAddition), maxStockAddition)

		product, ok := s.store.Product(addition.ProductID)
		if !ok {
			result.Failed = append(result.Failed, addition.ProductID)

			continue
		}

		outcome, err := s.actions.UpdateStock(ctx, product.ID, product.Stock+float64(amount))
		if err != nil || outcome != catalog.OutcomeCommitted {
			logger.Warn("Stock addition failed",
				slog.String("product_id", product.ID),
				slog.Int("amount", amount),
				slog.Any("error", err),
			)
			result.Failed = append(result.Failed, product.ID)

			continue
		}
		if updated, ok := s.store.Product(product.ID); ok {
			result.Updated = append(result.Updated, updated)
		}
	}

	if len(result.Updated) == 0 && len(result.Failed) == 0 {
		return nil, domainerrors.ErrEmptySelection
	}
	if len(result.Updated) > 0 {
		refreshCatalog(ctx, s.actions, s.logger)
	}

	return result, nil
}

func (s *catalogService) Preview(ref string) (*entity.ImageUpload, error) {
	upload, ok := s.previews.Get(ref)
	if !ok {
		return nil, domainerrors.ErrPreviewNotFound
	}

	return upload, nil
}

func (s *catalogService) Notifications(seq uint64) []catalog.Notification {
	return s.feed.Since(seq)
}

func (s *catalogService) result(id string, outcome catalog.Outcome, err error) (*entity.Product, error) {
	if err != nil {
		return nil, toAppError(err)
	}
	if outcome == catalog.OutcomeSkipped {
		return nil, domainerrors.ErrProductNotFound
	}

	product, ok := s.store.Product(id)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func viewOf(state catalog.State, products []*entity.Product) *usecase.CatalogView {
	return &usecase.CatalogView{
		Products:    products,
		Loading:     state.Loading,
		Error:       state.Error,
		Initialized: state.Initialized,
	}
}
