package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	mockRepo "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/repository"
	mockService "github.com/LudwingValecillos/VentaCarniceria/internal/mocks/service"
)

const testTenant = "carniceria-don-pepe"

var testNow = time.Date(2024, 11, 5, 14, 32, 10, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// catalogStack is a real gateway and catalog store running on mocked repositories.
type catalogStack struct {
	gateway  *gateway.Gateway
	actions  *catalog.Actions
	store    *catalog.Store
	previews *catalog.PreviewRegistry
	feed     *catalog.Feed
	products *mockRepo.MockProductRepository
	sales    *mockRepo.MockSaleRepository
	images   *mockService.MockImageHost
}

func createTestCatalogStack(t *testing.T) catalogStack {
	products := mockRepo.NewMockProductRepository(t)
	sales := mockRepo.NewMockSaleRepository(t)
	images := mockService.NewMockImageHost(t)
	logger := discardLogger()

	gw := gateway.New(gateway.TenantScope{ID: testTenant}, products, sales, images, 0, logger)
	store := catalog.NewStore()
	previews := catalog.NewPreviewRegistry()
	feed := catalog.NewFeed(logger, 10)

	return catalogStack{
		gateway:  gw,
		actions:  catalog.NewActions(store, gw, previews, feed, logger),
		store:    store,
		previews: previews,
		feed:     feed,
		products: products,
		sales:    sales,
		images:   images,
	}
}

// productTable backs the product repository mock with rows that updates modify,
// so reloads observe earlier writes.
type productTable struct {
	mu   sync.Mutex
	rows []*entity.Product
}

func (tbl *productTable) Get(id string) *entity.Product {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	for _, row := range tbl.rows {
		if row.ID == id {
			return row.Clone()
		}
	}

	return nil
}

// seed serves rows from FindAll and applies every Update to them. Expectations
// registered before seed take precedence.
func (s catalogStack) seed(rows ...*entity.Product) *productTable {
	tbl := &productTable{rows: rows}

	s.products.EXPECT().
		FindAll(mock.Anything, testTenant).
		RunAndReturn(func(context.Context, string) ([]*entity.Product, error) {
			tbl.mu.Lock()
			defer tbl.mu.Unlock()

			out := make([]*entity.Product, 0, len(tbl.rows))
			for _, row := range tbl.rows {
				out = append(out, row.Clone())
			}

			return out, nil
		}).
		Maybe()

	s.products.EXPECT().
		Update(mock.Anything, testTenant, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, id string, patch entity.ProductPatch) error {
			tbl.mu.Lock()
			defer tbl.mu.Unlock()

			for _, row := range tbl.rows {
				if row.ID == id {
					patch.Apply(row)

					return nil
				}
			}

			return repository.ErrProductNotFound
		}).
		Maybe()

	return tbl
}

func testProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "a", Name: "Asado de tira", Price: 100, Category: "Vacuno", Active: true, Offer: true, Stock: 10},
		{ID: "b", Name: "Chorizo", Price: 50, Category: "Cerdo", Active: true, Stock: 3},
		{ID: "c", Name: "Vacío", Price: 80, Category: "Vacuno", Active: false, Stock: 4},
	}
}
