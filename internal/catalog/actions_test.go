package catalog_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	mockCatalog "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/catalog"
)

var errRemote = errors.New("remote write failed")

// actionsFixtures holds all test dependencies for catalog action tests.
type actionsFixtures struct {
	actions  *catalog.Actions
	store    *catalog.Store
	remote   *mockCatalog.MockRemote
	previews *catalog.PreviewRegistry
	feed     *catalog.Feed
}

func createTestActions(t *testing.T) actionsFixtures {
	logger := slog.New(slog.DiscardHandler)
	store := catalog.NewStore()
	store.Dispatch(catalog.FetchSuccess{Products: []*entity.Product{
		{ID: "p1", Name: "Asado", Price: 8500, Image: "https://i.ibb.co/asado.jpg", Active: true, Stock: 12},
		{ID: "p2", Name: "Vacío", Price: 9200, Image: "https://i.ibb.co/vacio.jpg", Active: true, Offer: true, Stock: 4},
		{ID: "p3", Name: "Chorizo", Price: 4100, Active: false, Stock: 0},
	}})
	remote := mockCatalog.NewMockRemote(t)
	previews := catalog.NewPreviewRegistry()
	feed := catalog.NewFeed(logger, 10)

	return actionsFixtures{
		actions:  catalog.NewActions(store, remote, previews, feed, logger),
		store:    store,
		remote:   remote,
		previews: previews,
		feed:     feed,
	}
}

func (fx actionsFixtures) product(t *testing.T, id string) *entity.Product {
	t.Helper()

	product, ok := fx.store.Product(id)
	require.True(t, ok, "product %s should exist", id)

	return product
}

func TestActions_ToggleStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		remoteErr   error
		wantActive  bool
		wantOutcome catalog.Outcome
	}{
		{name: "committed", wantActive: false, wantOutcome: catalog.OutcomeCommitted},
		{name: "rolled back", remoteErr: errRemote, wantActive: true, wantOutcome: catalog.OutcomeRolledBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestActions(t)
			ctx := context.Background()

			fx.remote.EXPECT().
				UpdateProduct(ctx, "p1", mock.MatchedBy(func(p entity.ProductPatch) bool {
					return p.Active != nil && !*p.Active && p.Offer == nil
				})).
				RunAndReturn(func(context.Context, string, entity.ProductPatch) error {
					assert.False(t, fx.product(t, "p1").Active, "the change is visible before the remote write completes")

					return tt.remoteErr
				})

			outcome, err := fx.actions.ToggleStatus(ctx, "p1")
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantActive, fx.product(t, "p1").Active)
			if tt.remoteErr != nil {
				require.ErrorIs(t, err, tt.remoteErr)
				notifications := fx.feed.Since(0)
				require.Len(t, notifications, 1)
				assert.Equal(t, catalog.LevelError, notifications[0].Level)
				assert.Equal(t, "p1", notifications[0].ProductID)

				return
			}
			require.NoError(t, err)
			assert.Empty(t, fx.feed.Since(0))
		})
	}
}

func TestActions_ToggleOffer(t *testing.T) {
	t.Parallel()
	fx := createTestActions(t)
	ctx := context.Background()

	fx.remote.EXPECT().
		UpdateProduct(ctx, "p2", mock.MatchedBy(func(p entity.ProductPatch) bool {
			return p.Offer != nil && !*p.Offer
		})).
		Return(nil)

	outcome, err := fx.actions.ToggleOffer(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeCommitted, outcome)
	assert.False(t, fx.product(t, "p2").Offer)
}

func TestActions_MissingIDIsSkipped(t *testing.T) {
	t.Parallel()
	fx := createTestActions(t)
	ctx := context.Background()

	before := fx.store.Snapshot()

	outcome, err := fx.actions.ToggleStatus(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeSkipped, outcome)

	outcome, err = fx.actions.UpdatePrice(ctx, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeSkipped, outcome)

	outcome, err = fx.actions.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeSkipped, outcome)

	assert.Equal(t, before, fx.store.Snapshot())
}

func TestActions_UpdatePrice(t *testing.T) {
	t.Parallel()

	t.Run("rejects negative price without touching state", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)

		outcome, err := fx.actions.UpdatePrice(context.Background(), "p1", -1)
		require.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
		assert.Equal(t, catalog.OutcomeSkipped, outcome)
		assert.InDelta(t, 8500, fx.product(t, "p1").Price, 0.001)
	})

	t.Run("failure restores the original price", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().UpdateProduct(ctx, "p1", mock.Anything).Return(errRemote)

		outcome, err := fx.actions.UpdatePrice(ctx, "p1", 9100)
		require.ErrorIs(t, err, errRemote)
		assert.Equal(t, catalog.OutcomeRolledBack, outcome)
		assert.InDelta(t, 8500, fx.product(t, "p1").Price, 0.001)
	})

	t.Run("rollback does not clobber a newer value", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()
		newer := 9900.0

		fx.remote.EXPECT().
			UpdateProduct(ctx, "p1", mock.Anything).
			RunAndReturn(func(context.Context, string, entity.ProductPatch) error {
				fx.store.Dispatch(catalog.PatchProduct{ID: "p1", Patch: entity.ProductPatch{Price: &newer}})

				return errRemote
			})

		_, err := fx.actions.UpdatePrice(ctx, "p1", 9100)
		require.Error(t, err)
		assert.InDelta(t, newer, fx.product(t, "p1").Price, 0.001)
	})
}

func TestActions_UpdateName(t *testing.T) {
	t.Parallel()
	fx := createTestActions(t)
	ctx := context.Background()

	_, err := fx.actions.UpdateName(ctx, "p1", "   ")
	require.ErrorIs(t, err, domainerrors.ErrInvalidName)

	fx.remote.EXPECT().
		UpdateProduct(ctx, "p1", mock.MatchedBy(func(p entity.ProductPatch) bool {
			return p.Name != nil && *p.Name == "Asado de tira"
		})).
		Return(nil)

	outcome, err := fx.actions.UpdateName(ctx, "p1", "  Asado de tira ")
	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeCommitted, outcome)
	assert.Equal(t, "Asado de tira", fx.product(t, "p1").Name)
}

func TestActions_UpdateStockClampsAtZero(t *testing.T) {
	t.Parallel()
	fx := createTestActions(t)
	ctx := context.Background()

	fx.remote.EXPECT().
		UpdateProduct(ctx, "p2", mock.MatchedBy(func(p entity.ProductPatch) bool {
			return p.Stock != nil && *p.Stock == 0
		})).
		Return(nil)

	_, err := fx.actions.UpdateStock(ctx, "p2", -2.5)
	require.NoError(t, err)
	assert.Zero(t, fx.product(t, "p2").Stock)
}

func TestActions_UpdateImage(t *testing.T) {
	t.Parallel()
	upload := &entity.ImageUpload{Filename: "nuevo.png", ContentType: "image/png", Data: []byte("png")}

	t.Run("preview then hosted url", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().
			UpdateProductImage(ctx, "p1", "https://i.ibb.co/asado.jpg", upload).
			RunAndReturn(func(context.Context, string, string, *entity.ImageUpload) (string, error) {
				image := fx.product(t, "p1").Image
				assert.True(t, catalog.IsPreview(image))
				served, ok := fx.previews.Get(image)
				require.True(t, ok)
				assert.Same(t, upload, served)

				return "https://i.ibb.co/nuevo.png", nil
			})

		outcome, err := fx.actions.UpdateImage(ctx, "p1", upload)
		require.NoError(t, err)
		assert.Equal(t, catalog.OutcomeCommitted, outcome)
		assert.Equal(t, "https://i.ibb.co/nuevo.png", fx.product(t, "p1").Image)
		assert.Zero(t, fx.previews.Len())
	})

	t.Run("failure reverts and releases the preview", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().
			UpdateProductImage(ctx, "p1", mock.Anything, upload).
			Return("", errRemote)

		outcome, err := fx.actions.UpdateImage(ctx, "p1", upload)
		require.ErrorIs(t, err, errRemote)
		assert.Equal(t, catalog.OutcomeRolledBack, outcome)
		assert.Equal(t, "https://i.ibb.co/asado.jpg", fx.product(t, "p1").Image)
		assert.Zero(t, fx.previews.Len())
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)

		_, err := fx.actions.UpdateImage(context.Background(), "p1", &entity.ImageUpload{})
		require.ErrorIs(t, err, domainerrors.ErrImageRequired)
	})
}

func TestActions_Delete(t *testing.T) {
	t.Parallel()

	t.Run("committed", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().DeleteProduct(ctx, "p2", "https://i.ibb.co/vacio.jpg").Return(nil)

		outcome, err := fx.actions.Delete(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, catalog.OutcomeCommitted, outcome)
		_, ok := fx.store.Product("p2")
		assert.False(t, ok)
	})

	t.Run("failure re-inserts at the original position", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().
			DeleteProduct(ctx, "p2", mock.Anything).
			RunAndReturn(func(context.Context, string, string) error {
				_, ok := fx.store.Product("p2")
				assert.False(t, ok, "the product disappears before the remote delete completes")

				return errRemote
			})

		outcome, err := fx.actions.Delete(ctx, "p2")
		require.ErrorIs(t, err, errRemote)
		assert.Equal(t, catalog.OutcomeRolledBack, outcome)

		products := fx.store.Snapshot().Products
		require.Len(t, products, 3)
		assert.Equal(t, "p2", products[1].ID)
		assert.Equal(t, "Vacío", products[1].Name)
	})
}

func TestActions_Add(t *testing.T) {
	t.Parallel()
	upload := &entity.ImageUpload{Filename: "matambre.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}
	fields := entity.NewProduct{Name: "Matambre", Price: 7800, Category: "vacuno"}

	t.Run("temporary record is replaced by the stored one", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().
			CreateProduct(ctx, fields, upload).
			RunAndReturn(func(_ context.Context, fields entity.NewProduct, _ *entity.ImageUpload) (*entity.Product, error) {
				products := fx.store.Snapshot().Products
				require.Len(t, products, 4)
				temp := products[3]
				assert.True(t, strings.HasPrefix(temp.ID, catalog.TempIDPrefix))
				assert.True(t, catalog.IsPreview(temp.Image))
				assert.True(t, temp.Active)
				assert.InDelta(t, entity.DefaultInitialStock, temp.Stock, 0.001)

				return fields.Build("abc123", "https://i.ibb.co/matambre.jpg", temp.CreatedAt), nil
			})

		created, err := fx.actions.Add(ctx, fields, upload)
		require.NoError(t, err)
		assert.Equal(t, "abc123", created.ID)

		products := fx.store.Snapshot().Products
		require.Len(t, products, 4)
		assert.Equal(t, "abc123", products[3].ID)
		assert.Equal(t, "https://i.ibb.co/matambre.jpg", products[3].Image)
		assert.Zero(t, fx.previews.Len())
	})

	t.Run("failure removes the temporary record", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().CreateProduct(ctx, fields, upload).Return(nil, errRemote)

		created, err := fx.actions.Add(ctx, fields, upload)
		require.ErrorIs(t, err, errRemote)
		assert.Nil(t, created)
		assert.Len(t, fx.store.Snapshot().Products, 3)
		assert.Zero(t, fx.previews.Len())
	})

	t.Run("validation happens before any change", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		_, err := fx.actions.Add(ctx, entity.NewProduct{Name: " ", Price: 1}, upload)
		require.ErrorIs(t, err, domainerrors.ErrInvalidName)
		_, err = fx.actions.Add(ctx, entity.NewProduct{Name: "x", Price: -1}, upload)
		require.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
		_, err = fx.actions.Add(ctx, entity.NewProduct{Name: "x", Price: 1}, nil)
		require.ErrorIs(t, err, domainerrors.ErrImageRequired)
		assert.Len(t, fx.store.Snapshot().Products, 3)
	})
}

func TestActions_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().
			FetchCatalog(ctx).
			Return([]*entity.Product{{ID: "x1", Name: "Bondiola"}}, nil)

		require.NoError(t, fx.actions.Fetch(ctx))
		state := fx.store.Snapshot()
		assert.True(t, state.Initialized)
		assert.False(t, state.Loading)
		require.Len(t, state.Products, 1)
		assert.Equal(t, "x1", state.Products[0].ID)
	})

	t.Run("failure keeps products and records the error", func(t *testing.T) {
		t.Parallel()
		fx := createTestActions(t)
		ctx := context.Background()

		fx.remote.EXPECT().FetchCatalogFresh(ctx).Return(nil, errRemote)

		err := fx.actions.Refresh(ctx)
		require.ErrorIs(t, err, errRemote)
		state := fx.store.Snapshot()
		assert.False(t, state.Loading)
		assert.Equal(t, errRemote.Error(), state.Error)
		assert.Len(t, state.Products, 3)
	})
}
