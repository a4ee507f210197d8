package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	"github.com/LudwingValecillos/VentaCarniceria/internal/sale"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

const (
	// DefaultSalesPageSize is the number of sales per history page.
	DefaultSalesPageSize = 8
	// historyLimit caps how many sales of the date window are read.
	historyLimit = 100
	historyDate  = "02/01/2006"
)

type saleService struct {
	gateway   *gateway.Gateway
	actions   *catalog.Actions
	store     *catalog.Store
	wizards   *sale.Registry
	publisher service.EventPublisher
	threshold float64
	logger    *slog.Logger
	now       func() time.Time
}

// NewSaleService creates a new sale service instance
func NewSaleService(
	gw *gateway.Gateway,
	actions *catalog.Actions,
	wizards *sale.Registry,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SaleUsecase {
	threshold := 0.0
	if cfg.Store != nil {
		threshold = cfg.Store.LowStockThreshold
	}

	return &saleService{
		gateway:   gw,
		actions:   actions,
		store:     actions.Store(),
		wizards:   wizards,
		publisher: publisher,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *saleService) OpenWizard(ctx context.Context) (*sale.View, error) {
	ensureCatalog(ctx, s.actions, s.logger)
	view := s.wizards.Open().View()

	return &view, nil
}

func (s *saleService) GetWizard(_ context.Context, id string) (*sale.View, error) {
	return s.withWizard(id, func(*sale.Wizard) error { return nil })
}

func (s *saleService) CloseWizard(_ context.Context, id string) error {
	if _, err := s.wizards.Get(id); err != nil {
		return err
	}
	s.wizards.Close(id)

	return nil
}

func (s *saleService) Candidates(ctx context.Context, id, search string) ([]*entity.Product, error) {
	if _, err := s.wizards.Get(id); err != nil {
		return nil, err
	}
	ensureCatalog(ctx, s.actions, s.logger)

	return sale.Candidates(s.store.Snapshot().Products, search), nil
}

func (s *saleService) Toggle(ctx context.Context, id, productID string) (*sale.View, error) {
	ensureCatalog(ctx, s.actions, s.logger)

	return s.withWizard(id, func(w *sale.Wizard) error {
		product, ok := s.store.Product(productID)
		if !ok {
			// A product deleted after being selected can still be deselected.
			if !hasLine(w, productID) {
				return domainerrors.ErrProductNotFound
			}
			product = &entity.Product{ID: productID}
		}

		return w.Toggle(product)
	})
}

func (s *saleService) Advance(_ context.Context, id string) (*sale.View, error) {
	return s.withWizard(id, func(w *sale.Wizard) error { return w.Advance() })
}

func (s *saleService) Back(_ context.Context, id string) (*sale.View, error) {
	return s.withWizard(id, func(w *sale.Wizard) error {
		w.Back()

		return nil
	})
}

func (s *saleService) SetQuantity(_ context.Context, id, productID string, quantity float64) (*sale.View, error) {
	return s.withWizard(id, func(w *sale.Wizard) error { return w.SetQuantity(productID, quantity) })
}

func (s *saleService) Step(_ context.Context, id, productID string, direction int) (*sale.View, error) {
	if direction == 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("direction must be 1 or -1")
	}

	return s.withWizard(id, func(w *sale.Wizard) error { return w.Step(productID, direction) })
}

func (s *saleService) Input(_ context.Context, id, productID, text string) (*sale.View, error) {
	return s.withWizard(id, func(w *sale.Wizard) error { return w.Input(productID, text) })
}

func (s *saleService) Commit(_ context.Context, id, productID string) (*sale.View, error) {
	return s.withWizard(id, func(w *sale.Wizard) error { return w.Commit(productID) })
}

// SubmitWizard records the sale, then deducts the sold quantities one product at
// a time. It stops at the first failed deduction and keeps the wizard open; stock
// already deducted stays deducted. Only one submission of a wizard runs at a time.
func (s *saleService) SubmitWizard(ctx context.Context, id string, req usecase.SubmitRequest) (*entity.Sale, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	status := req.Status
	if status == "" {
		status = entity.SaleStatusCompleted
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	w, err := s.wizards.Get(id)
	if err != nil {
		return nil, err
	}
	lines, err := w.Submit(req.Confirmed)
	if err != nil {
		return nil, err
	}

	ensureCatalog(ctx, s.actions, s.logger)
	record, err := s.gateway.CreateSale(ctx, lines, strings.TrimSpace(req.Notes), status)
	if err != nil {
		w.Release()
		logger.Error("Failed to record sale", slog.String("wizard_id", id), slog.Any("error", err))

		return nil, toAppError(err)
	}

	// Pending sales do not hold stock until they are completed.
	if status == entity.SaleStatusCompleted {
		for _, line := range lines {
			if err := s.deduct(ctx, line); err != nil {
				w.Release()
				logger.Error("Stock deduction failed after sale",
					slog.String("sale_id", record.ID),
					slog.String("product_id", line.ProductID),
					slog.Any("error", err),
				)

				return nil, domainerrors.ErrSaleFailed.WithDetails(
					fmt.Sprintf("la venta %s se registró pero no se pudo actualizar el stock de %s", record.ID, line.ProductName),
				)
			}
		}
	}

	w.Reset()
	s.wizards.Close(id)
	refreshCatalog(ctx, s.actions, s.logger)
	if status == entity.SaleStatusCompleted {
		s.publishLowStock(ctx, productIDsOfLines(lines))
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", record.ID),
		slog.Float64("total_amount", record.TotalAmount),
		slog.Int("total_items", record.TotalItems),
	)

	return record, nil
}

func (s *saleService) deduct(ctx context.Context, line entity.SaleLine) error {
	product, ok := s.store.Product(line.ProductID)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Sold product is no longer in the catalog",
			slog.String("product_id", line.ProductID),
		)

		return nil
	}
	_, err := s.actions.UpdateStock(ctx, product.ID, sale.ApplyStockEffect(sale.EffectDeduct, product.Stock, line.Quantity))

	return err
}

func (s *saleService) History(ctx context.Context, query usecase.SalesHistoryQuery) (*usecase.SalesPage, error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	sales, err := s.salesInWindow(ctx, query.Preset)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]*entity.Sale, 0, len(sales))
	for _, record := range sales {
		if query.Status != "" && record.Status != query.Status {
			continue
		}
		if search != "" && !s.matchesSearch(record, search) {
			continue
		}
		filtered = append(filtered, record)
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = DefaultSalesPageSize
	}
	totalPages := int(math.Ceil(float64(len(filtered)) / float64(pageSize)))
	page := max(query.Page, 1)
	start := min((page-1)*pageSize, len(filtered))
	end := min(start+pageSize, len(filtered))

	return &usecase.SalesPage{
		Sales:      filtered[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
	}, nil
}

func (s *saleService) matchesSearch(record *entity.Sale, term string) bool {
	return strings.Contains(strings.ToLower(record.ID), term) ||
		strings.Contains(strconv.FormatFloat(record.TotalAmount, 'f', -1, 64), term) ||
		strings.Contains(record.Date.In(s.now().Location()).Format(historyDate), term)
}

// Stats aggregates the sales of the date window, ignoring status and search filters.
func (s *saleService) Stats(ctx context.Context, preset usecase.DatePreset) (*usecase.SalesStats, error) {
	sales, err := s.salesInWindow(ctx, preset)
	if err != nil {
		return nil, err
	}

	stats := &usecase.SalesStats{TotalSales: len(sales)}
	amount := decimal.Zero
	for _, record := range sales {
		switch record.Status {
		case entity.SaleStatusCompleted:
			stats.CompletedSales++
			amount = amount.Add(decimal.NewFromFloat(record.TotalAmount))
		case entity.SaleStatusPending:
			stats.PendingSales++
		case entity.SaleStatusCancelled:
			stats.CancelledSales++
		}
	}
	stats.TotalAmount = amount.Round(2).InexactFloat64()
	if stats.CompletedSales > 0 {
		stats.AverageSale = amount.Div(decimal.NewFromInt(int64(stats.CompletedSales))).Round(2).InexactFloat64()
	}

	return stats, nil
}

func (s *saleService) salesInWindow(ctx context.Context, preset usecase.DatePreset) ([]*entity.Sale, error) {
	if preset == "" {
		preset = usecase.PresetToday
	}
	if !preset.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown date preset " + string(preset))
	}

	query := entity.SalesQuery{Limit: historyLimit}
	query.Start, query.End = dateWindow(preset, s.now())

	sales, err := s.gateway.FetchSalesHistory(ctx, query)
	if err != nil {
		return nil, toAppError(err)
	}

	return sales, nil
}

// dateWindow returns the bounds of a preset in now's location. "all" is unbounded.
func dateWindow(preset usecase.DatePreset, now time.Time) (start, end *time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var from, to time.Time
	switch preset {
	case usecase.PresetToday:
		from, to = today, today.Add(24*time.Hour-time.Millisecond)
	case usecase.PresetWeek:
		from, to = today.AddDate(0, 0, -7), now
	case usecase.PresetMonth:
		from, to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	default:
		return nil, nil
	}

	return &from, &to
}

func (s *saleService) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	record, err := s.gateway.FetchSaleWithItems(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}

	return record, nil
}

// ChangeStatus writes the new status and, when the change crosses the completed
// boundary, moves each item's quantity in or out of stock. Failed stock updates
// are logged and skipped.
func (s *saleService) ChangeStatus(ctx context.Context, id string, next entity.SaleStatus) (*entity.Sale, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	current, err := s.gateway.FetchSaleWithItems(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}
	if current.Status == next {
		return current, nil
	}

	update, err := s.gateway.UpdateSaleStatus(ctx, id, next, current.Status)
	if err != nil {
		return nil, toAppError(err)
	}
	current.Status = next

	if !update.NeedsStockUpdate {
		return current, nil
	}

	ensureCatalog(ctx, s.actions, s.logger)
	touched := make([]string, 0, len(update.Items))
	for _, item := range update.Items {
		product, ok := s.store.Product(item.ProductID)
		if !ok {
			logger.Warn("Sale item product not found, skipping stock update",
				slog.String("sale_id", id),
				slog.String("product_id", item.ProductID),
			)

			continue
		}

		stock := sale.ApplyStockEffect(update.Effect, product.Stock, item.Quantity)
		if _, err := s.actions.UpdateStock(ctx, product.ID, stock); err != nil {
			logger.Warn("Stock reconciliation failed, skipping item",
				slog.String("sale_id", id),
				slog.String("product_id", product.ID),
				slog.String("effect", update.Effect.String()),
				slog.Any("error", err),
			)

			continue
		}
		touched = append(touched, product.ID)
	}

	refreshCatalog(ctx, s.actions, s.logger)
	if update.Effect == sale.EffectDeduct {
		s.publishLowStock(ctx, touched)
	}

	return current, nil
}

// publishLowStock announces every product left at or under the threshold. Publishing is best effort.
func (s *saleService) publishLowStock(ctx context.Context, productIDs []string) {
	if s.threshold <= 0 || s.publisher == nil {
		return
	}
	// Alerts for a committed sale outlive the request.
	ctx = deliverycontext.Detach(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for _, productID := range productIDs {
		product, ok := s.store.Product(productID)
		if !ok || product.Stock > s.threshold {
			continue
		}

		event := &service.StoreEvent{
			ID:         uuid.NewString(),
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			Kind:       service.EventStockLow,
			TenantID:   s.gateway.TenantID(),
			OccurredAt: s.now(),
			Stock: &service.StockLowPayload{
				ProductID:   product.ID,
				ProductName: product.Name,
				Stock:       product.Stock,
				Threshold:   s.threshold,
			},
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.Warn("Failed to publish low stock event",
				slog.String("product_id", product.ID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *saleService) withWizard(id string, fn func(*sale.Wizard) error) (*sale.View, error) {
	w, err := s.wizards.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	view := w.View()

	return &view, nil
}

func hasLine(w *sale.Wizard, productID string) bool {
	for _, line := range w.Lines() {
		if line.ProductID == productID {
			return true
		}
	}

	return false
}

func productIDsOfLines(lines []entity.SaleLine) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	return ids
}
