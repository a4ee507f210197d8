package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/model"
)

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByID retrieves a tenant with its contact directory.
func (repo *tenantRepository) FindByID(ctx context.Context, id string) (*entity.Tenant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByURL retrieves the tenant registered for a deployment URL.
func (repo *tenantRepository) FindByURL(ctx context.Context, url string) (*entity.Tenant, error) {
	return repo.findOne(ctx, "url = ?", url)
}

func (repo *tenantRepository) findOne(ctx context.Context, query string, arg any) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	var contactModels []*model.TenantContactModel
	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantM.ID).
		Order("position ASC").
		Find(&contactModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tenant contacts")
	}

	return toTenantDomain(&tenantM, contactModels), nil
}

// ReplaceContacts overwrites the directory in one transaction.
func (repo *tenantRepository) ReplaceContacts(ctx context.Context, tenantID string, contacts []entity.WhatsAppContact) error {
	contactModels := fromContactsDomain(tenantID, contacts, repo.now())

	err := runInTx(ctx, repo.db, func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.TenantContactModel{}).Error; err != nil {
			return err
		}
		if len(contactModels) == 0 {
			return nil
		}

		return tx.Create(&contactModels).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTenantNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidContact.WrapMessage("duplicate contact number")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace tenant contacts")
	}

	return nil
}
