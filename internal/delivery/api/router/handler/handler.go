// Package handler holds the echo handlers of the storefront API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and checks its validate tags.
// The returned error is rendered by the API error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("El cuerpo de la solicitud no es válido")
	}

	return c.Validate(req) //nolint:wrapcheck // rendered by the error handler
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
