package errors

import (
	"net/http"

	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business code so errors carrying details still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No se encontró el producto",
		"",
	)

	ErrProductInactive = NewBaseError(
		http.StatusConflict,
		"PRODUCT_INACTIVE",
		"El producto no está disponible",
		"",
	)

	ErrOutOfStock = NewBaseError(
		http.StatusConflict,
		"OUT_OF_STOCK",
		"El producto no tiene stock disponible",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"El precio ingresado no es válido",
		"",
	)

	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"El nombre del producto es obligatorio",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"Debe seleccionar una imagen",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"No se pudo subir la imagen",
		"",
	)

	ErrPreviewNotFound = NewBaseError(
		http.StatusNotFound,
		"PREVIEW_NOT_FOUND",
		"La vista previa ya no está disponible",
		"",
	)

	// Sale wizard errors
	ErrWizardNotFound = NewBaseError(
		http.StatusNotFound,
		"WIZARD_NOT_FOUND",
		"La venta en curso no existe o expiró",
		"",
	)

	ErrEmptySelection = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_SELECTION",
		"Seleccione al menos un producto",
		"",
	)

	ErrNotConfirmed = NewBaseError(
		http.StatusBadRequest,
		"NOT_CONFIRMED",
		"Debe confirmar la venta antes de procesarla",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"La cantidad ingresada no es válida",
		"",
	)

	ErrLineNotFound = NewBaseError(
		http.StatusNotFound,
		"LINE_NOT_FOUND",
		"El producto no está en la selección",
		"",
	)

	ErrWrongStep = NewBaseError(
		http.StatusConflict,
		"WRONG_STEP",
		"La operación no está disponible en este paso",
		"",
	)

	ErrSubmitInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMIT_IN_PROGRESS",
		"La venta ya se está registrando",
		"",
	)

	// Sale errors
	ErrSaleNotFound = NewBaseError(
		http.StatusNotFound,
		"SALE_NOT_FOUND",
		"No se encontró la venta",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Estado de venta inválido",
		"",
	)

	ErrSaleFailed = NewBaseError(
		http.StatusBadGateway,
		"SALE_FAILED",
		"Error al procesar la venta",
		"",
	)

	// Cart errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"El carrito no existe o expiró",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"El carrito está vacío",
		"",
	)

	ErrInvalidCustomer = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOMER",
		"Complete nombre, ubicación y método de pago",
		"",
	)

	// Contact directory errors
	ErrInvalidContact = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTACT",
		"Los datos del contacto no son válidos",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"El número de WhatsApp no es válido",
		"",
	)

	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"No se encontró el contacto",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Se requiere iniciar sesión",
		"",
	)

	// Tenant errors
	ErrTenantNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_NOT_FOUND",
		"No se encontró la carnicería",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// General errors
	ErrRemoteFailure = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_OPERATION_FAILED",
		"No se pudo completar la operación",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al acceder a la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// RemoteError wraps a failed call to the backing store or the image host
type RemoteError struct {
	err error
}

// NewRemoteError creates a remote failure error. It matches ErrRemoteFailure with errors.Is.
func NewRemoteError(err error) AppError {
	return &RemoteError{err: err}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return errors.Wrap(e.err, "remote operation failed").Error()
}

// Unwrap exposes the underlying failure.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// Is matches ErrRemoteFailure.
func (e *RemoteError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrRemoteFailure.errorCode
}

func (e *RemoteError) HTTPCode() int {
	return ErrRemoteFailure.httpCode
}

func (e *RemoteError) ErrorCode() string {
	return ErrRemoteFailure.errorCode
}

func (e *RemoteError) Message() string {
	return ErrRemoteFailure.message
}

func (e *RemoteError) Details() string {
	return ""
}
