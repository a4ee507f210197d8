package errors

import (
	"net/http"
	"testing"

	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrInvalidQuantity.WithDetails("quantity must be positive")

	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.False(t, errors.Is(err, ErrInvalidPrice))
	assert.Equal(t, "La cantidad ingresada no es válida: quantity must be positive", err.Error())
}

func TestBaseError_WrappedIsStillAnAppError(t *testing.T) {
	err := ErrSaleNotFound.WrapMessage("load sale_20240102_1030")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "SALE_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert product")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert product", err.Details())
}

func TestRemoteError_MatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := NewRemoteError(errors.Wrap(cause, "update product p1"))

	assert.True(t, errors.Is(err, ErrRemoteFailure))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInternalError))
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, ErrRemoteFailure.Message(), err.Message())
	assert.Contains(t, err.Error(), "deadline exceeded")
}
