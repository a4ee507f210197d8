package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler manages the WhatsApp contact directory.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

type ContactRequest struct {
	Name   string `json:"name" validate:"required,max=80"`
	Role   string `json:"role" validate:"required,contactrole"`
	Number string `json:"number" validate:"required,max=32"`
}

type SaveContactsRequest struct {
	Contacts []ContactRequest `json:"contacts" validate:"dive"`
}

// ContactView is a directory entry with its deep link.
type ContactView struct {
	entity.WhatsAppContact
	Link string `json:"link"`
}

func (r ContactRequest) input() usecase.ContactInput {
	return usecase.ContactInput{
		Name:   r.Name,
		Role:   entity.ContactRole(r.Role),
		Number: r.Number,
	}
}

func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contactUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.views(contacts))
}

// Save replaces the whole directory.
func (h *ContactHandler) Save(c echo.Context) error {
	var req SaveContactsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inputs := make([]usecase.ContactInput, 0, len(req.Contacts))
	for _, contact := range req.Contacts {
		inputs = append(inputs, contact.input())
	}

	contacts, err := h.contactUC.Save(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.views(contacts))
}

func (h *ContactHandler) Add(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contacts, err := h.contactUC.Add(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, h.views(contacts))
}

func (h *ContactHandler) Remove(c echo.Context) error {
	contacts, err := h.contactUC.Remove(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.views(contacts))
}

func (h *ContactHandler) views(contacts []entity.WhatsAppContact) []ContactView {
	out := make([]ContactView, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, ContactView{WhatsAppContact: contact, Link: h.contactUC.Link(contact.Number)})
	}

	return out
}
