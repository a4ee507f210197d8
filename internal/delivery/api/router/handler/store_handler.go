package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves the public storefront configuration.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// Config returns the tenant display data without the contact directory.
func (h *StoreHandler) Config(c echo.Context) error {
	tenant, err := h.storeUC.Config(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	public := *tenant
	public.Contacts = nil

	return response.OK(c, public)
}

func (h *StoreHandler) Settings(c echo.Context) error {
	return response.OK(c, h.storeUC.Settings())
}

// QR serves the store's WhatsApp QR code as a PNG.
func (h *StoreHandler) QR(c echo.Context) error {
	png, err := h.storeUC.ContactQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}
