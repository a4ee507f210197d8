package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the customer cart and checkout.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type CheckoutRequest struct {
	Name          string `json:"name" validate:"required,max=80"`
	Location      string `json:"location" validate:"required,max=200"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

func (h *CartHandler) Open(c echo.Context) error {
	summary, err := h.cartUC.Open(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, summary)
}

func (h *CartHandler) Get(c echo.Context) error {
	summary, err := h.cartUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}

// AddItem adds one unit, or half a unit when the product is already in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.cartUC.AddItem(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.cartUC.SetQuantity(c.Request().Context(), c.Param("id"), c.Param("productId"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	summary, err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}

// Checkout returns the WhatsApp order message and link.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	checkout, err := h.cartUC.Checkout(c.Request().Context(), c.Param("id"), entity.CustomerInfo{
		Name:          req.Name,
		Location:      req.Location,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, checkout)
}
