package impl

import (
	"github.com/pkg/errors"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
)

// toAppError maps repository sentinels to user-facing errors and marks every
// other failure as a remote one. Errors that already are AppErrors pass through.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrSaleNotFound):
		return domainerrors.ErrSaleNotFound
	case errors.Is(err, repository.ErrTenantNotFound):
		return domainerrors.ErrTenantNotFound
	default:
		return domainerrors.NewRemoteError(err)
	}
}
