package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
)

type tenantRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewTenantRepository creates a Firestore-backed tenant repository
func NewTenantRepository(client *firestore.Client) repository.TenantRepository {
	return &tenantRepository{client: client, now: time.Now}
}

func (r *tenantRepository) FindByID(ctx context.Context, id string) (*entity.Tenant, error) {
	snap, err := tenantRef(r.client, id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrTenantNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get tenant")
	}

	return tenantFromData(snap.Ref.ID, snap.Data()), nil
}

func (r *tenantRepository) FindByURL(ctx context.Context, url string) (*entity.Tenant, error) {
	snaps, err := r.client.Collection(constants.CollectionTenants).
		Where(fieldURL, "==", url).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query tenant by url")
	}
	if len(snaps) == 0 {
		return nil, errors.WithStack(repository.ErrTenantNotFound)
	}

	return tenantFromData(snaps[0].Ref.ID, snaps[0].Data()), nil
}

func (r *tenantRepository) ReplaceContacts(ctx context.Context, tenantID string, contacts []entity.WhatsAppContact) error {
	_, err := tenantRef(r.client, tenantID).Update(ctx, []firestore.Update{
		{Path: fieldWhatsAppNumbers, Value: contactsToData(contacts, r.now())},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrTenantNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace contacts")
	}

	return nil
}
