package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/model"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db:  db,
		now: time.Now,
	}
}

// Create writes the header and its items in one transaction.
func (repo *saleRepository) Create(ctx context.Context, tenantID string, sale *entity.Sale) error {
	saleM := fromSaleDomain(tenantID, sale, repo.now())
	items := saleM.Items
	saleM.Items = nil

	err := runInTx(ctx, repo.db, func(tx *gorm.DB) error {
		if err := tx.Create(saleM).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		return tx.Create(&items).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSale
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	return nil
}

// Find reads the history from a replica when one is configured.
func (repo *saleRepository) Find(ctx context.Context, tenantID string, query entity.SalesQuery) ([]*entity.Sale, error) {
	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("tenant_id = ?", tenantID)
	if query.Start != nil {
		db = db.Where("date >= ?", *query.Start)
	}
	if query.End != nil {
		db = db.Where("date <= ?", *query.End)
	}
	if query.Status != "" {
		db = db.Where("status = ?", string(query.Status))
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var saleModels []*model.SaleModel
	if err := db.Order("date DESC").Find(&saleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// FindWithItems loads the header and its items ordered by position.
func (repo *saleRepository) FindWithItems(ctx context.Context, tenantID, id string) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	sale := toSaleDomain(&saleM)
	if sale.Items == nil {
		sale.Items = []*entity.SaleItem{}
	}

	return sale, nil
}

// UpdateStatus changes the status of a sale.
func (repo *saleRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entity.SaleStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": repo.now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sale status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}
