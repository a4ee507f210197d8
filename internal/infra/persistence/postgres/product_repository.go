package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/model"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db:  db,
		now: time.Now,
	}
}

// FindAll retrieves the tenant's catalog ordered by creation.
func (repo *productRepository) FindAll(ctx context.Context, tenantID string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product of the tenant.
func (repo *productRepository) FindByID(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product with a generated id.
func (repo *productRepository) Create(ctx context.Context, tenantID string, product *entity.Product) (*entity.Product, error) {
	productM := fromProductDomain(tenantID, product)
	productM.ID = uuid.Must(uuid.NewV7()).String()
	now := repo.now()
	if productM.CreatedAt.IsZero() {
		productM.CreatedAt = now
	}
	productM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidPrice.WrapMessage("product violates a check constraint")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return toProductDomain(productM), nil
}

// Update merges patch into the stored product.
func (repo *productRepository) Update(ctx context.Context, tenantID, id string, patch entity.ProductPatch) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(patchColumns(patch, repo.now()))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPrice.WrapMessage("product violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete permanently removes a product. Deleting a missing product is not an error.
func (repo *productRepository) Delete(ctx context.Context, tenantID, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}
