package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	mockRepo "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/repository"
	mockService "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service usecase.StoreUsecase
	tenants *mockRepo.MockTenantRepository
	qrcodes *mockService.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	tenants := mockRepo.NewMockTenantRepository(t)
	qrcodes := mockService.NewMockQRCodeService(t)
	cfg := &config.Config{
		Store: &config.StoreConfig{
			Name:           "Carnicería Don Pepe",
			WhatsApp:       "11 5555-0000",
			Categories:     []string{"Vacuno", "Cerdo"},
			PaymentMethods: []string{"Efectivo"},
		},
		ImageHost: &config.ImageHostConfig{MaxUploadSize: "5MB"},
	}

	return storeServiceFixtures{
		service: NewStoreService(tenants, gateway.TenantScope{ID: testTenant}, qrcodes, cfg, discardLogger()),
		tenants: tenants,
		qrcodes: qrcodes,
	}
}

func testTenantRecord() *entity.Tenant {
	return &entity.Tenant{
		ID:    testTenant,
		Name:  "Don Pepe",
		Hours: []string{"Lun a Sab 8 a 20"},
		Contacts: []entity.WhatsAppContact{
			{Name: "Pepe", Role: entity.ContactRoleOwner, Number: "5491144440000"},
		},
	}
}

func TestStoreService_ConfigIsCachedAndPublic(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.tenants.EXPECT().
		FindByID(mock.Anything, testTenant).
		Return(testTenantRecord(), nil).
		Once()

	first, err := fx.service.Config(ctx)
	require.NoError(t, err)
	first.Hours[0] = "modificado"

	second, err := fx.service.Config(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Don Pepe", second.Name)
	assert.Nil(t, second.Contacts, "staff contacts are not public")
	assert.Equal(t, "11 5555-0000", second.Social.WhatsApp, "missing whatsapp falls back to the configured number")
	assert.Equal(t, []string{"Lun a Sab 8 a 20"}, second.Hours)
}

func TestStoreService_ConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "unknown tenant", err: repository.ErrTenantNotFound, expected: domainerrors.ErrTenantNotFound},
		{name: "store failure", err: errors.New("unavailable"), expected: domainerrors.ErrRemoteFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestStoreService(t)

			fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(nil, tt.err).Once()

			_, err := fx.service.Config(context.Background())
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestStoreService_Settings(t *testing.T) {
	fx := createTestStoreService(t)

	settings := fx.service.Settings()
	settings.Categories[0] = "modificado"

	again := fx.service.Settings()
	assert.Equal(t, "Carnicería Don Pepe", again.Name)
	assert.Equal(t, []string{"Vacuno", "Cerdo"}, again.Categories)
	assert.Equal(t, "ARS", again.CurrencyCode)
	assert.Equal(t, "es-AR", again.PriceLocale)
	assert.Equal(t, 2, again.PriceDecimals)
	assert.InDelta(t, 1.0, again.DefaultQuantity, 0.001)
	assert.InDelta(t, 0.5, again.QuantityStep, 0.001)
	assert.Equal(t, "5MB", again.MaxUploadSize)
}

func TestStoreService_ContactQR(t *testing.T) {
	fx := createTestStoreService(t)
	tenant := testTenantRecord()
	tenant.Social.WhatsApp = "5491144440000"

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(tenant, nil).Once()
	fx.qrcodes.EXPECT().
		GenerateLinkQR("https://wa.me/5491144440000?text=Hola%2C%20me%20gustar%C3%ADa%20hacer%20un%20pedido.").
		Return([]byte("png"), nil).
		Once()

	png, err := fx.service.ContactQR(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestStoreService_ContactQRFallsBackToConfiguredNumber(t *testing.T) {
	fx := createTestStoreService(t)

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(nil, errors.New("unavailable")).Once()
	fx.qrcodes.EXPECT().
		GenerateLinkQR(mock.MatchedBy(func(link string) bool {
			return strings.HasPrefix(link, "https://wa.me/5491155550000?text=")
		})).
		Return([]byte("png"), nil).
		Once()

	_, err := fx.service.ContactQR(context.Background())

	require.NoError(t, err)
}
