package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	mockService "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/sale"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// saleServiceFixtures holds all test dependencies for sale service tests.
type saleServiceFixtures struct {
	catalogStack
	service   usecase.SaleUsecase
	wizards   *sale.Registry
	publisher *mockService.MockEventPublisher
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	stack := createTestCatalogStack(t)
	wizards := sale.NewRegistry(time.Hour)
	publisher := mockService.NewMockEventPublisher(t)
	cfg := &config.Config{Store: &config.StoreConfig{LowStockThreshold: 2}}

	svc := NewSaleService(stack.gateway, stack.actions, wizards, publisher, cfg, discardLogger()).(*saleService)
	svc.now = func() time.Time { return testNow }

	return saleServiceFixtures{
		catalogStack: stack,
		service:      svc,
		wizards:      wizards,
		publisher:    publisher,
	}
}

// confirmWizard selects a and b and leaves the wizard on the confirm step with
// quantities 2 and 3.
func (fx saleServiceFixtures) confirmWizard(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	view, err := fx.service.OpenWizard(ctx)
	require.NoError(t, err)

	_, err = fx.service.Toggle(ctx, view.ID, "a")
	require.NoError(t, err)
	_, err = fx.service.Toggle(ctx, view.ID, "b")
	require.NoError(t, err)
	_, err = fx.service.Advance(ctx, view.ID)
	require.NoError(t, err)
	_, err = fx.service.SetQuantity(ctx, view.ID, "a", 2)
	require.NoError(t, err)
	_, err = fx.service.SetQuantity(ctx, view.ID, "b", 3)
	require.NoError(t, err)

	return view.ID
}

func TestSaleService_SubmitWizard(t *testing.T) {
	fx := createTestSaleService(t)
	tbl := fx.seed(testProducts()...)
	ctx := context.Background()

	wizardID := fx.confirmWizard(t)

	var stored *entity.Sale
	fx.sales.EXPECT().
		Create(mock.Anything, testTenant, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, record *entity.Sale) error {
			stored = record

			return nil
		}).
		Once()
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.StoreEvent) bool {
			return event.Kind == service.EventStockLow && event.Stock.ProductID == "b" && event.TenantID == testTenant
		})).
		Return(nil).
		Once()

	record, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true, Notes: "  mostrador  "})

	require.NoError(t, err)
	assert.Same(t, stored, record)
	assert.Equal(t, entity.SaleStatusCompleted, record.Status)
	assert.Equal(t, "mostrador", record.Notes)
	assert.Equal(t, 2, record.TotalItems)
	assert.InDelta(t, 5.0, record.TotalQuantity, 0.001)
	assert.InDelta(t, 350.0, record.TotalAmount, 0.001)
	require.Len(t, record.Items, 2)
	assert.Equal(t, "1", record.Items[0].ID)

	assert.InDelta(t, 8.0, tbl.Get("a").Stock, 0.001)
	assert.InDelta(t, 0.0, tbl.Get("b").Stock, 0.001)

	_, err = fx.service.GetWizard(ctx, wizardID)
	require.ErrorIs(t, err, domainerrors.ErrWizardNotFound, "a submitted wizard is closed")
}

func TestSaleService_SubmitWizardConcurrentSubmitRecordsOnce(t *testing.T) {
	fx := createTestSaleService(t)
	tbl := fx.seed(testProducts()...)
	ctx := context.Background()

	wizardID := fx.confirmWizard(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.sales.EXPECT().
		Create(mock.Anything, testTenant, mock.Anything).
		RunAndReturn(func(context.Context, string, *entity.Sale) error {
			close(entered)
			<-release

			return nil
		}).
		Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	type result struct {
		record *entity.Sale
		err    error
	}
	first := make(chan result, 1)
	go func() {
		record, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})
		first <- result{record: record, err: err}
	}()
	<-entered

	record, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})
	assert.Nil(t, record)
	require.ErrorIs(t, err, domainerrors.ErrSubmitInProgress)

	close(release)
	got := <-first
	require.NoError(t, got.err)
	require.NotNil(t, got.record)

	assert.InDelta(t, 8.0, tbl.Get("a").Stock, 0.001)
	assert.InDelta(t, 0.0, tbl.Get("b").Stock, 0.001)
}

func TestSaleService_SubmitWizardRetryAfterCreateFailure(t *testing.T) {
	fx := createTestSaleService(t)
	tbl := fx.seed(testProducts()...)
	ctx := context.Background()

	wizardID := fx.confirmWizard(t)
	fx.sales.EXPECT().
		Create(mock.Anything, testTenant, mock.Anything).
		Return(errors.New("unavailable")).
		Once()
	fx.sales.EXPECT().
		Create(mock.Anything, testTenant, mock.Anything).
		Return(nil).
		Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})
	require.ErrorIs(t, err, domainerrors.ErrRemoteFailure)

	record, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})
	require.NoError(t, err, "a failed submission releases the wizard")
	require.NotNil(t, record)
	assert.InDelta(t, 8.0, tbl.Get("a").Stock, 0.001)
}

func TestSaleService_SubmitWizardPendingKeepsStock(t *testing.T) {
	fx := createTestSaleService(t)
	tbl := fx.seed(testProducts()...)

	wizardID := fx.confirmWizard(t)
	fx.sales.EXPECT().Create(mock.Anything, testTenant, mock.Anything).Return(nil).Once()

	record, err := fx.service.SubmitWizard(context.Background(), wizardID, usecase.SubmitRequest{
		Confirmed: true,
		Status:    entity.SaleStatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, record.Status)
	assert.InDelta(t, 10.0, tbl.Get("a").Stock, 0.001)
	assert.InDelta(t, 3.0, tbl.Get("b").Stock, 0.001)
}

func TestSaleService_SubmitWizardStockFailureKeepsWizard(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	fx.products.EXPECT().
		Update(mock.Anything, testTenant, "b", mock.Anything).
		Return(errors.New("deadline exceeded")).
		Once()
	tbl := fx.seed(testProducts()...)

	wizardID := fx.confirmWizard(t)
	fx.sales.EXPECT().Create(mock.Anything, testTenant, mock.Anything).Return(nil).Once()

	record, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})

	assert.Nil(t, record)
	require.ErrorIs(t, err, domainerrors.ErrSaleFailed)
	assert.InDelta(t, 8.0, tbl.Get("a").Stock, 0.001, "earlier deductions are kept")
	assert.InDelta(t, 3.0, tbl.Get("b").Stock, 0.001)

	view, err := fx.service.GetWizard(ctx, wizardID)
	require.NoError(t, err)
	assert.Equal(t, sale.StepConfirm, view.Step)
	assert.Len(t, view.Lines, 2)
}

func TestSaleService_SubmitWizardRequiresConfirmation(t *testing.T) {
	fx := createTestSaleService(t)
	fx.seed(testProducts()...)

	wizardID := fx.confirmWizard(t)

	_, err := fx.service.SubmitWizard(context.Background(), wizardID, usecase.SubmitRequest{})

	require.ErrorIs(t, err, domainerrors.ErrNotConfirmed)
}

func TestSaleService_SubmitWizardCreateFailure(t *testing.T) {
	fx := createTestSaleService(t)
	tbl := fx.seed(testProducts()...)
	ctx := context.Background()

	wizardID := fx.confirmWizard(t)
	fx.sales.EXPECT().
		Create(mock.Anything, testTenant, mock.Anything).
		Return(errors.New("permission denied")).
		Once()

	_, err := fx.service.SubmitWizard(ctx, wizardID, usecase.SubmitRequest{Confirmed: true})

	require.ErrorIs(t, err, domainerrors.ErrRemoteFailure)
	assert.InDelta(t, 10.0, tbl.Get("a").Stock, 0.001)

	_, err = fx.service.GetWizard(ctx, wizardID)
	require.NoError(t, err)
}

func TestSaleService_Toggle(t *testing.T) {
	fx := createTestSaleService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	view, err := fx.service.OpenWizard(ctx)
	require.NoError(t, err)

	t.Run("inactive product", func(t *testing.T) {
		_, err := fx.service.Toggle(ctx, view.ID, "c")
		require.ErrorIs(t, err, domainerrors.ErrProductInactive)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := fx.service.Toggle(ctx, view.ID, "ghost")
		require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("unknown wizard", func(t *testing.T) {
		_, err := fx.service.Toggle(ctx, "missing", "a")
		require.ErrorIs(t, err, domainerrors.ErrWizardNotFound)
	})

	t.Run("deselect removed product", func(t *testing.T) {
		_, err := fx.service.Toggle(ctx, view.ID, "a")
		require.NoError(t, err)
		fx.store.Dispatch(catalog.RemoveProduct{ID: "a"})

		updated, err := fx.service.Toggle(ctx, view.ID, "a")
		require.NoError(t, err)
		assert.Empty(t, updated.Lines)
	})
}

func TestSaleService_Candidates(t *testing.T) {
	fx := createTestSaleService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	view, err := fx.service.OpenWizard(ctx)
	require.NoError(t, err)

	products, err := fx.service.Candidates(ctx, view.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, productIDs(products))

	products, err = fx.service.Candidates(ctx, view.ID, "asado")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, productIDs(products))
}

func TestSaleService_StepRejectsZeroDirection(t *testing.T) {
	fx := createTestSaleService(t)

	_, err := fx.service.Step(context.Background(), "any", "a", 0)

	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestSaleService_ChangeStatus(t *testing.T) {
	items := []*entity.SaleItem{{ID: "1", ProductID: "a", Quantity: 8}, {ID: "2", ProductID: "ghost", Quantity: 1}}

	tests := []struct {
		name          string
		prev          entity.SaleStatus
		next          entity.SaleStatus
		expectedStock float64
		expectPublish bool
	}{
		{name: "completed to cancelled restores", prev: entity.SaleStatusCompleted, next: entity.SaleStatusCancelled, expectedStock: 18},
		{name: "pending to completed deducts", prev: entity.SaleStatusPending, next: entity.SaleStatusCompleted, expectedStock: 2, expectPublish: true},
		{name: "pending to cancelled leaves stock", prev: entity.SaleStatusPending, next: entity.SaleStatusCancelled, expectedStock: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestSaleService(t)
			tbl := fx.seed(testProducts()...)
			ctx := context.Background()

			fx.sales.EXPECT().
				FindWithItems(mock.Anything, testTenant, "sale_20241105_1432").
				Return(&entity.Sale{ID: "sale_20241105_1432", Status: tt.prev, Items: items}, nil)
			fx.sales.EXPECT().
				UpdateStatus(mock.Anything, testTenant, "sale_20241105_1432", tt.next).
				Return(nil).
				Once()
			if tt.expectPublish {
				fx.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(event *service.StoreEvent) bool {
						return event.Stock != nil && event.Stock.ProductID == "a"
					})).
					Return(nil).
					Once()
			}

			record, err := fx.service.ChangeStatus(ctx, "sale_20241105_1432", tt.next)

			require.NoError(t, err)
			assert.Equal(t, tt.next, record.Status)
			assert.InDelta(t, tt.expectedStock, tbl.Get("a").Stock, 0.001)
		})
	}
}

func TestSaleService_ChangeStatusUnchanged(t *testing.T) {
	fx := createTestSaleService(t)

	fx.sales.EXPECT().
		FindWithItems(mock.Anything, testTenant, "sale_1").
		Return(&entity.Sale{ID: "sale_1", Status: entity.SaleStatusPending}, nil).
		Once()

	record, err := fx.service.ChangeStatus(context.Background(), "sale_1", entity.SaleStatusPending)

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, record.Status)
}

func TestSaleService_ChangeStatusErrors(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	_, err := fx.service.ChangeStatus(ctx, "sale_1", "refunded")
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	fx.sales.EXPECT().
		FindWithItems(mock.Anything, testTenant, "sale_missing").
		Return(nil, repository.ErrSaleNotFound).
		Once()

	_, err = fx.service.ChangeStatus(ctx, "sale_missing", entity.SaleStatusCancelled)
	require.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
}

func historySales() []*entity.Sale {
	sales := make([]*entity.Sale, 0, 10)
	for idx := range 10 {
		status := entity.SaleStatusCompleted
		if idx%4 == 3 {
			status = entity.SaleStatusPending
		}
		sales = append(sales, &entity.Sale{
			ID:          fmt.Sprintf("sale_20241105_%04d", 1400-idx),
			Date:        testNow.Add(-time.Duration(idx) * time.Minute),
			TotalAmount: float64(1000 + idx*125),
			Status:      status,
		})
	}

	return sales
}

func TestSaleService_History(t *testing.T) {
	tests := []struct {
		name          string
		query         usecase.SalesHistoryQuery
		expectedTotal int
		expectedPages int
		expectedLen   int
	}{
		{name: "first page", query: usecase.SalesHistoryQuery{}, expectedTotal: 10, expectedPages: 2, expectedLen: 8},
		{name: "second page", query: usecase.SalesHistoryQuery{Page: 2}, expectedTotal: 10, expectedPages: 2, expectedLen: 2},
		{name: "page past the end", query: usecase.SalesHistoryQuery{Page: 5}, expectedTotal: 10, expectedPages: 2, expectedLen: 0},
		{name: "status filter", query: usecase.SalesHistoryQuery{Status: entity.SaleStatusPending}, expectedTotal: 2, expectedPages: 1, expectedLen: 2},
		{name: "search by id", query: usecase.SalesHistoryQuery{Search: "1398"}, expectedTotal: 1, expectedPages: 1, expectedLen: 1},
		{name: "search by amount", query: usecase.SalesHistoryQuery{Search: "1125"}, expectedTotal: 1, expectedPages: 1, expectedLen: 1},
		{name: "search by date", query: usecase.SalesHistoryQuery{Search: "05/11/2024"}, expectedTotal: 10, expectedPages: 2, expectedLen: 8},
		{name: "custom page size", query: usecase.SalesHistoryQuery{PageSize: 3}, expectedTotal: 10, expectedPages: 4, expectedLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestSaleService(t)

			fx.sales.EXPECT().
				Find(mock.Anything, testTenant, mock.MatchedBy(func(query entity.SalesQuery) bool {
					return query.Limit == historyLimit && query.Start != nil && query.End != nil && query.Status == ""
				})).
				Return(historySales(), nil).
				Once()

			page, err := fx.service.History(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, page.Total)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.Len(t, page.Sales, tt.expectedLen)
		})
	}
}

func TestSaleService_HistoryRejectsUnknownFilters(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	_, err := fx.service.History(ctx, usecase.SalesHistoryQuery{Status: "refunded"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	_, err = fx.service.History(ctx, usecase.SalesHistoryQuery{Preset: "year"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSaleService_Stats(t *testing.T) {
	fx := createTestSaleService(t)

	fx.sales.EXPECT().
		Find(mock.Anything, testTenant, mock.MatchedBy(func(query entity.SalesQuery) bool {
			return query.Start == nil && query.End == nil
		})).
		Return([]*entity.Sale{
			{ID: "s1", TotalAmount: 100, Status: entity.SaleStatusCompleted},
			{ID: "s2", TotalAmount: 50.5, Status: entity.SaleStatusCompleted},
			{ID: "s3", TotalAmount: 30, Status: entity.SaleStatusPending},
			{ID: "s4", TotalAmount: 20, Status: entity.SaleStatusCancelled},
		}, nil).
		Once()

	stats, err := fx.service.Stats(context.Background(), usecase.PresetAll)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SalesStats{
		TotalSales:     4,
		TotalAmount:    150.5,
		CompletedSales: 2,
		PendingSales:   1,
		CancelledSales: 1,
		AverageSale:    75.25,
	}, stats)
}

func TestDateWindow(t *testing.T) {
	t.Parallel()

	midnight := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		preset usecase.DatePreset
		start  time.Time
		end    time.Time
	}{
		{preset: usecase.PresetToday, start: midnight, end: midnight.Add(24*time.Hour - time.Millisecond)},
		{preset: usecase.PresetWeek, start: time.Date(2024, 10, 29, 0, 0, 0, 0, time.UTC), end: testNow},
		{preset: usecase.PresetMonth, start: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), end: testNow},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			start, end := dateWindow(tt.preset, testNow)
			require.NotNil(t, start)
			require.NotNil(t, end)
			assert.Equal(t, tt.start, *start)
			assert.Equal(t, tt.end, *end)
		})
	}

	start, end := dateWindow(usecase.PresetAll, testNow)
	assert.Nil(t, start)
	assert.Nil(t, end)
}
