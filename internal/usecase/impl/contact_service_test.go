package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	mockRepo "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/repository"
	mockService "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// contactServiceFixtures holds all test dependencies for contact service tests.
type contactServiceFixtures struct {
	service   usecase.ContactUsecase
	tenants   *mockRepo.MockTenantRepository
	publisher *mockService.MockEventPublisher
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	tenants := mockRepo.NewMockTenantRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewContactService(tenants, gateway.TenantScope{ID: testTenant}, publisher, discardLogger()).(*contactService)
	svc.now = func() time.Time { return testNow }

	return contactServiceFixtures{
		service:   svc,
		tenants:   tenants,
		publisher: publisher,
	}
}

var ownerCreatedAt = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func testDirectory() *entity.Tenant {
	return &entity.Tenant{
		ID:   testTenant,
		Name: "Don Pepe",
		Contacts: []entity.WhatsAppContact{
			{Name: "Pepe", Role: entity.ContactRoleOwner, Number: "+54 9 11 4444-0000", CreatedAt: ownerCreatedAt},
		},
	}
}

func TestContactService_ListNormalizesAndCaches(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil).Once()

	_, err := fx.service.List(ctx)
	require.NoError(t, err)
	contacts, err := fx.service.List(ctx)
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "5491144440000", contacts[0].Number)
}

func TestContactService_SavePublishesOnlyNewNumbers(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil).Once()

	var saved []entity.WhatsAppContact
	fx.tenants.EXPECT().
		ReplaceContacts(mock.Anything, testTenant, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, contacts []entity.WhatsAppContact) error {
			saved = contacts

			return nil
		}).
		Once()

	var published []*service.StoreEvent
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.StoreEvent) error {
			published = append(published, event)

			return nil
		}).
		Once()

	contacts, err := fx.service.Save(ctx, []usecase.ContactInput{
		{Name: "Pepe", Role: entity.ContactRoleOwner, Number: "11 4444-0000"},
		{Name: " Ana ", Role: entity.ContactRoleSeller, Number: "011 3333-2222"},
		{Name: "Ana otra vez", Role: entity.ContactRoleSeller, Number: "+54 9 11 3333-2222"},
	})

	require.NoError(t, err)
	require.Len(t, contacts, 2, "repeated numbers are dropped")
	assert.Equal(t, saved, contacts)
	assert.Equal(t, ownerCreatedAt, contacts[0].CreatedAt, "existing contacts keep their creation date")
	assert.Equal(t, testNow, contacts[0].UpdatedAt)
	assert.Equal(t, "Ana", contacts[1].Name)
	assert.Equal(t, testNow, contacts[1].CreatedAt)

	require.Len(t, published, 1)
	assert.Equal(t, service.EventContactAdded, published[0].Kind)
	assert.Equal(t, testTenant, published[0].TenantID)
	assert.Equal(t, &service.ContactAddedPayload{
		Name:       "Ana",
		Phone:      contacts[1].Number,
		Role:       string(entity.ContactRoleSeller),
		TenantName: "Don Pepe",
		CreatedAt:  testNow,
	}, published[0].Contact)

	cached, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, contacts, cached, "saved directory is served from cache")
}

func TestContactService_ListInFlightDuringSaveKeepsSavedDirectory(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.tenants.EXPECT().
		FindByID(mock.Anything, testTenant).
		RunAndReturn(func(context.Context, string) (*entity.Tenant, error) {
			close(entered)
			<-release

			return testDirectory(), nil
		}).
		Once()
	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil).Once()
	fx.tenants.EXPECT().ReplaceContacts(mock.Anything, testTenant, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	listed := make(chan []entity.WhatsAppContact, 1)
	go func() {
		contacts, err := fx.service.List(ctx)
		assert.NoError(t, err)
		listed <- contacts
	}()
	<-entered

	saved, err := fx.service.Save(ctx, []usecase.ContactInput{
		{Name: "Pepe", Role: entity.ContactRoleOwner, Number: "11 4444-0000"},
		{Name: "Ana", Role: entity.ContactRoleSeller, Number: "11 3333-2222"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	close(release)
	assert.Len(t, <-listed, 1, "the earlier read returns what it read")

	cached, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, cached, "the earlier read must not overwrite the saved directory")
}

func TestContactService_SaveValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.ContactInput
		expected error
	}{
		{name: "missing name", input: usecase.ContactInput{Name: " ", Role: entity.ContactRoleSeller, Number: "11 3333-2222"}, expected: domainerrors.ErrInvalidContact},
		{name: "unknown role", input: usecase.ContactInput{Name: "Ana", Role: "cajero", Number: "11 3333-2222"}, expected: domainerrors.ErrInvalidContact},
		{name: "invalid number", input: usecase.ContactInput{Name: "Ana", Role: entity.ContactRoleSeller, Number: "1234"}, expected: domainerrors.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestContactService(t)

			_, err := fx.service.Save(context.Background(), []usecase.ContactInput{tt.input})

			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestContactService_SavePublishFailureIsIgnored(t *testing.T) {
	fx := createTestContactService(t)

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(&entity.Tenant{ID: testTenant}, nil).Once()
	fx.tenants.EXPECT().ReplaceContacts(mock.Anything, testTenant, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("pubsub down")).Once()

	contacts, err := fx.service.Save(context.Background(), []usecase.ContactInput{
		{Name: "Ana", Role: entity.ContactRoleSeller, Number: "11 3333-2222"},
	})

	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactService_SaveStoreFailure(t *testing.T) {
	fx := createTestContactService(t)

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil).Once()
	fx.tenants.EXPECT().ReplaceContacts(mock.Anything, testTenant, mock.Anything).Return(errors.New("unavailable")).Once()

	_, err := fx.service.Save(context.Background(), []usecase.ContactInput{
		{Name: "Ana", Role: entity.ContactRoleSeller, Number: "11 3333-2222"},
	})

	require.ErrorIs(t, err, domainerrors.ErrRemoteFailure)
}

func TestContactService_AddRejectsDuplicate(t *testing.T) {
	fx := createTestContactService(t)

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil).Once()

	_, err := fx.service.Add(context.Background(), usecase.ContactInput{
		Name: "Pepe", Role: entity.ContactRoleOwner, Number: "11 4444 0000",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidContact)
}

func TestContactService_Remove(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.tenants.EXPECT().FindByID(mock.Anything, testTenant).Return(testDirectory(), nil)
	fx.tenants.EXPECT().
		ReplaceContacts(mock.Anything, testTenant, []entity.WhatsAppContact{}).
		Return(nil).
		Once()

	contacts, err := fx.service.Remove(ctx, "+54 9 11 4444-0000")
	require.NoError(t, err)
	assert.Empty(t, contacts)

	_, err = fx.service.Remove(ctx, "11 9999-9999")
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_Link(t *testing.T) {
	fx := createTestContactService(t)

	assert.Equal(t, "https://wa.me/5491144440000", fx.service.Link("11 4444-0000"))
}
