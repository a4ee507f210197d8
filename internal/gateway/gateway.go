// Package gateway is the single entry point to the remote stores of the tenant:
// products, sales and hosted images.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/cache"
	"github.com/LudwingValecillos/VentaCarniceria/internal/sale"
)

const (
	// DefaultSalesLimit caps a sales history read without an explicit limit.
	DefaultSalesLimit = 50

	catalogKey        = "catalog"
	maxSaleIDAttempts = 5
)

// StatusUpdate reports what a sale status change requires from the caller.
type StatusUpdate struct {
	Effect           sale.StockEffect
	NeedsStockUpdate bool
	Items            []*entity.SaleItem
}

// Gateway wraps the repositories and the image host for one tenant.
type Gateway struct {
	tenantID string
	products repository.ProductRepository
	sales    repository.SaleRepository
	images   service.ImageHost
	logger   *slog.Logger

	catalog *cache.Loader[string, []*entity.Product]
	now     func() time.Time
}

// New returns a gateway bound to scope. Catalog reads are served from memory for
// freshness; a zero freshness only coalesces concurrent reads.
func New(
	scope TenantScope,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	images service.ImageHost,
	freshness time.Duration,
	logger *slog.Logger,
) *Gateway {
	return &Gateway{
		tenantID: scope.ID,
		products: products,
		sales:    sales,
		images:   images,
		logger:   logger.With(slog.String("tenant_id", scope.ID)),
		catalog:  cache.NewLoader[string, []*entity.Product](freshness),
		now:      time.Now,
	}
}

// TenantID returns the tenant the gateway is bound to.
func (g *Gateway) TenantID() string {
	return g.tenantID
}

// FetchCatalog returns every product of the tenant.
func (g *Gateway) FetchCatalog(ctx context.Context) ([]*entity.Product, error) {
	products, err := g.catalog.Get(ctx, catalogKey, g.findAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalog")
	}

	return cloneProducts(products), nil
}

// FetchCatalogFresh reads the catalog from the store, skipping the cache. It never
// returns a read that started before the last write through the gateway.
func (g *Gateway) FetchCatalogFresh(ctx context.Context) ([]*entity.Product, error) {
	products, err := g.catalog.Fresh(ctx, catalogKey, g.findAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalog")
	}

	return cloneProducts(products), nil
}

func (g *Gateway) findAll(ctx context.Context) ([]*entity.Product, error) {
	return g.products.FindAll(ctx, g.tenantID)
}

// CreateProduct uploads the image and stores the product. A failed upload leaves
// the product without an image instead of failing the creation.
func (g *Gateway) CreateProduct(ctx context.Context, fields entity.NewProduct, image *entity.ImageUpload) (*entity.Product, error) {
	imageURL := ""
	if !image.IsEmpty() {
		url, err := g.images.Upload(ctx, image)
		if err != nil {
			g.logger.WarnContext(ctx, "Image upload failed, creating product without image",
				slog.String("product_name", fields.Name),
				slog.Any("error", err),
			)
		} else {
			imageURL = url
		}
	}

	product := fields.Build("", imageURL, g.now())
	created, err := g.products.Create(ctx, g.tenantID, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	g.invalidate()

	return created, nil
}

// UpdateProduct merges patch into the stored product.
func (g *Gateway) UpdateProduct(ctx context.Context, id string, patch entity.ProductPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if err := g.products.Update(ctx, g.tenantID, id, patch); err != nil {
		return errors.Wrapf(err, "failed to update product %s", id)
	}
	g.invalidate()

	return nil
}

// UpdateProductImage uploads a new image, points the product at it and releases the old one.
func (g *Gateway) UpdateProductImage(ctx context.Context, id, oldURL string, image *entity.ImageUpload) (string, error) {
	url, err := g.images.Upload(ctx, image)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}
	if url == "" {
		return "", errors.New("image host returned an empty url")
	}

	if err := g.products.Update(ctx, g.tenantID, id, entity.ProductPatch{Image: &url}); err != nil {
		return "", errors.Wrapf(err, "failed to update image of product %s", id)
	}
	g.invalidate()
	g.releaseImage(ctx, oldURL)

	return url, nil
}

// DeleteProduct removes the product and releases its image.
func (g *Gateway) DeleteProduct(ctx context.Context, id, imageURL string) error {
	if err := g.products.Delete(ctx, g.tenantID, id); err != nil {
		return errors.Wrapf(err, "failed to delete product %s", id)
	}
	g.invalidate()
	g.releaseImage(ctx, imageURL)

	return nil
}

func (g *Gateway) releaseImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := g.images.Delete(ctx, url); err != nil {
		g.logger.WarnContext(ctx, "Failed to release image",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

func (g *Gateway) invalidate() {
	g.catalog.Invalidate(catalogKey)
}

// CreateSale records a sale with its items. The id is derived from the current
// minute; a taken id gets a numeric suffix.
func (g *Gateway) CreateSale(ctx context.Context, lines []entity.SaleLine, notes string, status entity.SaleStatus) (*entity.Sale, error) {
	if len(lines) == 0 {
		return nil, errors.New("sale has no lines")
	}

	now := g.now()
	base := entity.SaleID(now)
	for attempt := 1; attempt <= maxSaleIDAttempts; attempt++ {
		id := base
		if attempt > 1 {
			id = fmt.Sprintf("%s_%d", base, attempt)
		}

		record := entity.NewSale(id, now, lines, notes, status)
		err := g.sales.Create(ctx, g.tenantID, record)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrDuplicateSale) {
			return nil, errors.Wrap(err, "failed to create sale")
		}
	}

	return nil, errors.Wrapf(repository.ErrDuplicateSale, "no free sale id for %s", base)
}

// FetchSalesHistory returns the sales matching query, newest first.
func (g *Gateway) FetchSalesHistory(ctx context.Context, query entity.SalesQuery) ([]*entity.Sale, error) {
	if query.Limit <= 0 {
		query.Limit = DefaultSalesLimit
	}

	sales, err := g.sales.Find(ctx, g.tenantID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch sales history")
	}

	return sales, nil
}

// FetchSaleWithItems returns a sale and its items.
func (g *Gateway) FetchSaleWithItems(ctx context.Context, id string) (*entity.Sale, error) {
	record, err := g.sales.FindWithItems(ctx, g.tenantID, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch sale %s", id)
	}

	return record, nil
}

// UpdateSaleStatus writes the new status and reports whether stock must follow.
func (g *Gateway) UpdateSaleStatus(ctx context.Context, id string, next, prev entity.SaleStatus) (StatusUpdate, error) {
	if !next.IsValid() {
		return StatusUpdate{}, errors.Errorf("invalid sale status %q", next)
	}

	if err := g.sales.UpdateStatus(ctx, g.tenantID, id, next); err != nil {
		return StatusUpdate{}, errors.Wrapf(err, "failed to update status of sale %s", id)
	}

	effect := sale.DecideStockEffect(prev, next)
	if effect == sale.EffectNone {
		return StatusUpdate{Effect: effect}, nil
	}

	record, err := g.sales.FindWithItems(ctx, g.tenantID, id)
	if err != nil {
		return StatusUpdate{}, errors.Wrapf(err, "failed to read items of sale %s", id)
	}

	return StatusUpdate{Effect: effect, NeedsStockUpdate: true, Items: record.Items}, nil
}

func cloneProducts(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, len(products))
	for idx, product := range products {
		out[idx] = product.Clone()
	}

	return out
}
