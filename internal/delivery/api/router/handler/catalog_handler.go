package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

const imageField = "image"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public product listing and the admin product panel.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// PriceInput accepts a JSON number or a typed string such as "1.234,56".
type PriceInput string

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*p = PriceInput(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.WithStack(err)
	}
	*p = PriceInput(n.String())

	return nil
}

// Value parses the price in either notation.
func (p PriceInput) Value() (float64, error) {
	price, err := util.ParsePrice(string(p))
	if err != nil {
		return 0, domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	return price, nil
}

type UpdatePriceRequest struct {
	Price PriceInput `json:"price" validate:"required"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type UpdateStockRequest struct {
	Stock *float64 `json:"stock" validate:"required,gte=0"`
}

type AddStockRequest struct {
	Additions []usecase.StockAddition `json:"additions" validate:"required,min=1,dive"`
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	offer, _ := strconv.ParseBool(c.QueryParam("offer"))
	filter := usecase.ProductFilter{
		Category:  c.QueryParam("category"),
		Query:     c.QueryParam("q"),
		OfferOnly: offer,
	}

	view, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

// Preview serves the raw bytes of an image whose upload is still in flight.
func (h *CatalogHandler) Preview(c echo.Context) error {
	upload, err := h.catalogUC.Preview(c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(upload.Data)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, contentType, upload.Data)
}

// ListAll handles GET /api/v1/admin/products
func (h *CatalogHandler) ListAll(c echo.Context) error {
	view, err := h.catalogUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

func (h *CatalogHandler) Refresh(c echo.Context) error {
	view, err := h.catalogUC.Refresh(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}

// CreateProduct handles the multipart product form.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	fields, err := newProductFromForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), fields, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

func (h *CatalogHandler) ToggleStatus(c echo.Context) error {
	product, err := h.catalogUC.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) ToggleOffer(c echo.Context) error {
	product, err := h.catalogUC.ToggleOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) UpdatePrice(c echo.Context) error {
	var req UpdatePriceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	price, err := req.Price.Value()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdatePrice(c.Request().Context(), c.Param("id"), price)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) UpdateName(c echo.Context) error {
	var req UpdateNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.UpdateName(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) UpdateStock(c echo.Context) error {
	var req UpdateStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.UpdateStock(c.Request().Context(), c.Param("id"), *req.Stock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// UpdateImage replaces the product image with the multipart "image" file.
func (h *CatalogHandler) UpdateImage(c echo.Context) error {
	image, err := readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateImage(c.Request().Context(), c.Param("id"), image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// AddStock handles POST /api/v1/admin/stock/additions
func (h *CatalogHandler) AddStock(c echo.Context) error {
	var req AddStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.catalogUC.AddStock(c.Request().Context(), req.Additions)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// Notifications returns admin notifications newer than ?since.
func (h *CatalogHandler) Notifications(c echo.Context) error {
	var since uint64
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return response.BindingError(c, "since debe ser un número")
		}
		since = parsed
	}

	return response.OK(c, h.catalogUC.Notifications(since))
}

func newProductFromForm(c echo.Context) (entity.NewProduct, error) {
	fields := entity.NewProduct{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Category: strings.TrimSpace(c.FormValue("category")),
	}
	if fields.Name == "" {
		return fields, domainerrors.ErrInvalidName
	}

	price, err := PriceInput(c.FormValue("price")).Value()
	if err != nil {
		return fields, err
	}
	fields.Price = price

	if raw := c.FormValue("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return fields, domainerrors.ErrValidationFailed.WithDetails("active")
		}
		fields.Active = &active
	}
	if raw := c.FormValue("offer"); raw != "" {
		offer, err := strconv.ParseBool(raw)
		if err != nil {
			return fields, domainerrors.ErrValidationFailed.WithDetails("offer")
		}
		fields.Offer = offer
	}
	if raw := c.FormValue("stock"); raw != "" {
		stock, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || stock < 0 {
			return fields, domainerrors.ErrInvalidQuantity.WithDetails("stock")
		}
		fields.Stock = &stock
	}

	return fields, nil
}

// readImage returns nil when the form carries no image file.
func readImage(c echo.Context) (*entity.ImageUpload, error) {
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrImageRequired.WithDetails(err.Error())
	}

	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*entity.ImageUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded image")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &entity.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
