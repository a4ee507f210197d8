package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	mockUsecase "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/usecase"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	catalogStack
	service usecase.CartUsecase
	carts   *cart.Registry
	store   *mockUsecase.MockStoreUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	stack := createTestCatalogStack(t)
	carts := cart.NewRegistry(time.Hour)
	store := mockUsecase.NewMockStoreUsecase(t)

	return cartServiceFixtures{
		catalogStack: stack,
		service:      NewCartService(carts, stack.actions, store, discardLogger()),
		carts:        carts,
		store:        store,
	}
}

var testCustomer = entity.CustomerInfo{Name: "Juan", Location: "San Martín 123", PaymentMethod: "efectivo"}

func TestCartService_AddItem(t *testing.T) {
	fx := createTestCartService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	opened, err := fx.service.Open(ctx)
	require.NoError(t, err)

	_, err = fx.service.AddItem(ctx, opened.ID, "a")
	require.NoError(t, err)
	summary, err := fx.service.AddItem(ctx, opened.ID, "a")
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.InDelta(t, 1.5, summary.Items[0].Quantity, 0.001)
	assert.InDelta(t, 150.0, summary.Total, 0.001)

	_, err = fx.service.AddItem(ctx, opened.ID, "c")
	require.ErrorIs(t, err, domainerrors.ErrProductInactive)

	_, err = fx.service.AddItem(ctx, opened.ID, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.AddItem(ctx, "missing", "a")
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	fx := createTestCartService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()

	opened, err := fx.service.Open(ctx)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, opened.ID, "a")
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, opened.ID, "b")
	require.NoError(t, err)

	summary, err := fx.service.SetQuantity(ctx, opened.ID, "b", 2.5)
	require.NoError(t, err)
	assert.InDelta(t, 225.0, summary.Total, 0.001)

	summary, err = fx.service.RemoveItem(ctx, opened.ID, "a")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "b", summary.Items[0].ProductID)

	_, err = fx.service.SetQuantity(ctx, opened.ID, "a", 1)
	require.ErrorIs(t, err, domainerrors.ErrLineNotFound)
}

func (fx cartServiceFixtures) filledCart(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	opened, err := fx.service.Open(ctx)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, opened.ID, "a")
	require.NoError(t, err)

	return opened.ID
}

func TestCartService_Checkout(t *testing.T) {
	fx := createTestCartService(t)
	fx.seed(testProducts()...)
	ctx := context.Background()
	cartID := fx.filledCart(t)

	fx.store.EXPECT().
		Settings().
		Return(&usecase.StoreSettings{WhatsApp: "+54 9 11 5555-0000", PaymentMethods: []string{"Efectivo", "Transferencia"}}).
		Once()
	fx.store.EXPECT().
		Config(mock.Anything).
		Return(&entity.Tenant{ID: testTenant, Social: entity.TenantSocial{WhatsApp: "5491144440000"}}, nil).
		Once()

	checkout, err := fx.service.Checkout(ctx, cartID, testCustomer)

	require.NoError(t, err)
	assert.InDelta(t, 100.0, checkout.Total, 0.001)
	assert.Contains(t, checkout.Message, "*Cliente:* Juan")
	assert.Contains(t, checkout.Message, "- Asado de tira: 1kg x $100,00 = $100,00")
	assert.True(t, strings.HasPrefix(checkout.Link, "https://wa.me/5491144440000?text="), checkout.Link)
	assert.NotContains(t, checkout.Link, "+")

	_, err = fx.service.Get(ctx, cartID)
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound, "checked out carts are discarded")
}

func TestCartService_CheckoutFallsBackToConfiguredNumber(t *testing.T) {
	fx := createTestCartService(t)
	fx.seed(testProducts()...)
	cartID := fx.filledCart(t)

	fx.store.EXPECT().Settings().Return(&usecase.StoreSettings{WhatsApp: "+54 9 11 5555-0000"}).Once()
	fx.store.EXPECT().Config(mock.Anything).Return(nil, errors.New("tenant unavailable")).Once()

	checkout, err := fx.service.Checkout(context.Background(), cartID, testCustomer)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(checkout.Link, "https://wa.me/5491155550000?text="), checkout.Link)
}

func TestCartService_CheckoutValidation(t *testing.T) {
	tests := []struct {
		name     string
		customer entity.CustomerInfo
		methods  []string
		expected error
	}{
		{
			name:     "unsupported payment method",
			customer: entity.CustomerInfo{Name: "Juan", Location: "Centro", PaymentMethod: "bitcoin"},
			methods:  []string{"Efectivo"},
			expected: domainerrors.ErrInvalidCustomer,
		},
		{
			name:     "missing location",
			customer: entity.CustomerInfo{Name: "Juan", PaymentMethod: "Efectivo"},
			expected: domainerrors.ErrInvalidCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestCartService(t)
			fx.seed(testProducts()...)
			ctx := context.Background()
			cartID := fx.filledCart(t)

			fx.store.EXPECT().Settings().Return(&usecase.StoreSettings{PaymentMethods: tt.methods}).Once()

			_, err := fx.service.Checkout(ctx, cartID, tt.customer)
			require.ErrorIs(t, err, tt.expected)

			_, err = fx.service.Get(ctx, cartID)
			require.NoError(t, err, "a rejected checkout keeps the cart")
		})
	}
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	opened, err := fx.service.Open(ctx)
	require.NoError(t, err)
	fx.store.EXPECT().Settings().Return(&usecase.StoreSettings{}).Once()

	_, err = fx.service.Checkout(ctx, opened.ID, testCustomer)

	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}
