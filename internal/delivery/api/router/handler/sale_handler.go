package handler

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler serves the sales history and the in-store sale wizard.
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

type ChangeStatusRequest struct {
	Status entity.SaleStatus `json:"status" validate:"required,salestatus"`
}

type SetQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

type StepRequest struct {
	Direction int `json:"direction" validate:"required,oneof=-1 1"`
}

type InputRequest struct {
	Text string `json:"text" validate:"max=16"`
}

type ToggleRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type SubmitRequest struct {
	Confirmed bool              `json:"confirmed"`
	Notes     string            `json:"notes" validate:"max=500"`
	Status    entity.SaleStatus `json:"status" validate:"omitempty,salestatus"`
}

// History handles GET /api/v1/admin/sales?preset&status&q&page&pageSize
func (h *SaleHandler) History(c echo.Context) error {
	query := usecase.SalesHistoryQuery{
		Preset: usecase.DatePreset(c.QueryParam("preset")),
		Status: entity.SaleStatus(c.QueryParam("status")),
		Search: c.QueryParam("q"),
	}
	if query.Preset != "" && !query.Preset.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("preset")
	}
	if query.Status != "" && !query.Status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	var err error
	if query.Page, err = intQuery(c, "page"); err != nil {
		return err
	}
	if query.PageSize, err = intQuery(c, "pageSize"); err != nil {
		return err
	}

	page, err := h.saleUC.History(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

func (h *SaleHandler) Stats(c echo.Context) error {
	preset := usecase.DatePreset(c.QueryParam("preset"))
	if preset != "" && !preset.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("preset")
	}

	stats, err := h.saleUC.Stats(c.Request().Context(), preset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

func (h *SaleHandler) GetSale(c echo.Context) error {
	sale, err := h.saleUC.GetSale(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, sale)
}

// ChangeStatus handles PATCH /api/v1/admin/sales/:id/status
func (h *SaleHandler) ChangeStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sale, err := h.saleUC.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, sale)
}

func (h *SaleHandler) OpenWizard(c echo.Context) error {
	view, err := h.saleUC.OpenWizard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, view)
}

func (h *SaleHandler) GetWizard(c echo.Context) error {
	view, err := h.saleUC.GetWizard(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) CloseWizard(c echo.Context) error {
	if err := h.saleUC.CloseWizard(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// Candidates handles GET /api/v1/admin/wizards/:id/candidates?q
func (h *SaleHandler) Candidates(c echo.Context) error {
	products, err := h.saleUC.Candidates(c.Request().Context(), c.Param("id"), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

func (h *SaleHandler) Toggle(c echo.Context) error {
	var req ToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.saleUC.Toggle(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) Advance(c echo.Context) error {
	view, err := h.saleUC.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) Back(c echo.Context) error {
	view, err := h.saleUC.Back(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.saleUC.SetQuantity(c.Request().Context(), c.Param("id"), c.Param("productId"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

// Step moves a line's quantity one stepper increment up or down.
func (h *SaleHandler) Step(c echo.Context) error {
	var req StepRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.saleUC.Step(c.Request().Context(), c.Param("id"), c.Param("productId"), req.Direction)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) Input(c echo.Context) error {
	var req InputRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.saleUC.Input(c.Request().Context(), c.Param("id"), c.Param("productId"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *SaleHandler) Commit(c echo.Context) error {
	view, err := h.saleUC.Commit(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

// Submit records the wizard's sale.
func (h *SaleHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sale, err := h.saleUC.SubmitWizard(c.Request().Context(), c.Param("id"), usecase.SubmitRequest{
		Confirmed: req.Confirmed,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, sale)
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name)
	}

	return value, nil
}
