package firestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
)

type saleRepository struct {
	client *firestore.Client
}

// NewSaleRepository creates a Firestore-backed sale repository
func NewSaleRepository(client *firestore.Client) repository.SaleRepository {
	return &saleRepository{client: client}
}

// Create writes the header and its items subcollection in one transaction.
func (r *saleRepository) Create(ctx context.Context, tenantID string, sale *entity.Sale) error {
	saleRef := salesRef(r.client, tenantID).Doc(sale.ID)

	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(saleRef)
		if err == nil && snap.Exists() {
			return errors.WithStack(repository.ErrDuplicateSale)
		}
		if err != nil && !isNotFound(err) {
			return err
		}

		if err := tx.Create(saleRef, saleToData(sale)); err != nil {
			return err
		}
		itemsRef := saleRef.Collection(constants.CollectionItems)
		for _, item := range sale.Items {
			if err := tx.Create(itemsRef.Doc(item.ID), saleItemToData(item)); err != nil {
				return err
			}
		}

		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicateSale), isAlreadyExists(err):
		return errors.WithStack(repository.ErrDuplicateSale)
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}
}

func (r *saleRepository) Find(ctx context.Context, tenantID string, query entity.SalesQuery) ([]*entity.Sale, error) {
	q := salesRef(r.client, tenantID).Query
	if query.Start != nil {
		q = q.Where(fieldDate, ">=", *query.Start)
	}
	if query.End != nil {
		q = q.Where(fieldDate, "<=", *query.End)
	}
	if query.Status != "" {
		q = q.Where(fieldStatus, "==", string(query.Status))
	}
	q = q.OrderBy(fieldDate, firestore.Desc)
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var sales []*entity.Sale
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query sales")
		}
		sales = append(sales, saleFromData(snap.Ref.ID, snap.Data()))
	}

	return sales, nil
}

func (r *saleRepository) FindWithItems(ctx context.Context, tenantID, id string) (*entity.Sale, error) {
	saleRef := salesRef(r.client, tenantID).Doc(id)
	snap, err := saleRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrSaleNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get sale")
	}
	sale := saleFromData(snap.Ref.ID, snap.Data())

	itemSnaps, err := saleRef.Collection(constants.CollectionItems).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sale items")
	}
	sale.Items = make([]*entity.SaleItem, 0, len(itemSnaps))
	for _, itemSnap := range itemSnaps {
		sale.Items = append(sale.Items, saleItemFromData(itemSnap.Ref.ID, itemSnap.Data()))
	}
	sort.SliceStable(sale.Items, func(i, j int) bool {
		return itemPosition(sale.Items[i].ID) < itemPosition(sale.Items[j].ID)
	})

	return sale, nil
}

func (r *saleRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entity.SaleStatus) error {
	_, err := salesRef(r.client, tenantID).Doc(id).Update(ctx, []firestore.Update{
		{Path: fieldStatus, Value: string(status)},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrSaleNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update sale status")
	}

	return nil
}
