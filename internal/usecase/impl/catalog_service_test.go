package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	catalogStack
	service usecase.CatalogUsecase
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	stack := createTestCatalogStack(t)

	return catalogServiceFixtures{
		catalogStack: stack,
		service:      NewCatalogService(stack.actions, stack.previews, stack.feed, discardLogger()),
	}
}

func productIDs(products []*entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	return ids
}

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name     string
		filter   usecase.ProductFilter
		expected []string
	}{
		{name: "no filter hides inactive products", filter: usecase.ProductFilter{}, expected: []string{"a", "b"}},
		{name: "all category", filter: usecase.ProductFilter{Category: "all"}, expected: []string{"a", "b"}},
		{name: "category is case insensitive", filter: usecase.ProductFilter{Category: "vacuno"}, expected: []string{"a"}},
		{name: "name search", filter: usecase.ProductFilter{Query: " CHOR "}, expected: []string{"b"}},
		{name: "offers only", filter: usecase.ProductFilter{OfferOnly: true}, expected: []string{"a"}},
		{name: "no match", filter: usecase.ProductFilter{Category: "Pollo"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestCatalogService(t)
			fx.seed(testProducts()...)

			view, err := fx.service.ListProducts(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.True(t, view.Initialized)
			assert.Equal(t, tt.expected, productIDs(view.Products))
		})
	}
}

func TestCatalogService_LoadsCatalogOnce(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		Return(testProducts(), nil).
		Once()

	_, err := fx.service.ListProducts(ctx, usecase.ProductFilter{})
	require.NoError(t, err)

	view, err := fx.service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Products, 3, "admin listing includes inactive products")
}

func TestCatalogService_ListAllServesFailedLoad(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		Return(nil, errors.New("firestore unavailable")).
		Once()

	view, err := fx.service.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.False(t, view.Loading)
	assert.NotEmpty(t, view.Error)
}

func TestCatalogService_RetriesFailedFirstLoad(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		Return(nil, errors.New("firestore unavailable")).
		Once()
	fx.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		Return(testProducts(), nil).
		Once()

	view, err := fx.service.ListAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, view.Error)

	view, err = fx.service.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Error)
	assert.Len(t, view.Products, 3)

	_, err = fx.service.ListAll(ctx)
	require.NoError(t, err, "a loaded catalog is not fetched again")
}

func TestCatalogService_RefreshReportsRemoteFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		Return(nil, errors.New("firestore unavailable")).
		Once()

	view, err := fx.service.Refresh(context.Background())

	assert.Nil(t, view)
	require.ErrorIs(t, err, domainerrors.ErrRemoteFailure)
}

func TestCatalogService_ToggleStatus(t *testing.T) {
	fx := createTestCatalogService(t)
	tbl := fx.seed(testProducts()...)

	product, err := fx.service.ToggleStatus(context.Background(), "a")

	require.NoError(t, err)
	assert.False(t, product.Active)
	assert.False(t, tbl.Get("a").Active)
}

func TestCatalogService_UnknownProductIsNotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	_, err := fx.service.ToggleOffer(ctx, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.UpdateName(ctx, "ghost", "Matambre")
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = fx.service.DeleteProduct(ctx, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_UpdatePriceRollsBackOnFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.EXPECT().
		Update(mock.Anything, testTenant, "a", mock.Anything).
		Return(errors.New("deadline exceeded")).
		Once()
	fx.seed(testProducts()...)

	product, err := fx.service.UpdatePrice(ctx, "a", 250)

	assert.Nil(t, product)
	require.ErrorIs(t, err, domainerrors.ErrRemoteFailure)

	current, ok := fx.store.Product("a")
	require.True(t, ok)
	assert.InDelta(t, 100.0, current.Price, 0.001)

	notifications := fx.service.Notifications(0)
	require.NotEmpty(t, notifications)
	assert.Equal(t, catalog.LevelError, notifications[len(notifications)-1].Level)
}

func TestCatalogService_UpdatePriceRejectsNegative(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.seed(testProducts()...)

	_, err := fx.service.UpdatePrice(context.Background(), "a", -1)

	require.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	fx.products.EXPECT().Delete(mock.Anything, testTenant, "b").Return(nil).Once()

	require.NoError(t, fx.service.DeleteProduct(ctx, "b"))

	_, ok := fx.store.Product("b")
	assert.False(t, ok)
}

func TestCatalogService_AddStock(t *testing.T) {
	fx := createTestCatalogService(t)
	tbl := fx.seed(testProducts()...)

	result, err := fx.service.AddStock(context.Background(), []usecase.StockAddition{
		{ProductID: "a", Amount: 5000},
		{ProductID: "b", Amount: 2},
		{ProductID: "c", Amount: 0},
		{ProductID: "ghost", Amount: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, productIDs(result.Updated))
	assert.Equal(t, []string{"ghost"}, result.Failed)
	assert.InDelta(t, 1009.0, tbl.Get("a").Stock, 0.001, "additions are capped at 999")
	assert.InDelta(t, 5.0, tbl.Get("b").Stock, 0.001)
	assert.InDelta(t, 4.0, tbl.Get("c").Stock, 0.001)
}

func TestCatalogService_AddStockWithoutAmounts(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.seed(testProducts()...)

	result, err := fx.service.AddStock(context.Background(), []usecase.StockAddition{
		{ProductID: "a", Amount: 0},
		{ProductID: "b", Amount: -4},
	})

	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrEmptySelection)
}

func TestCatalogService_Preview(t *testing.T) {
	fx := createTestCatalogService(t)
	upload := &entity.ImageUpload{Filename: "asado.png", ContentType: "image/png", Data: []byte{1, 2, 3}}

	ref := fx.previews.Acquire(upload)
	defer fx.previews.Release(ref)

	got, err := fx.service.Preview(ref)
	require.NoError(t, err)
	assert.Equal(t, upload.Data, got.Data)

	_, err = fx.service.Preview("preview://missing")
	require.ErrorIs(t, err, domainerrors.ErrPreviewNotFound)
}
