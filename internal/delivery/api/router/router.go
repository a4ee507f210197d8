// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/middleware"
	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/router/handler"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	SaleHandler    *handler.SaleHandler
	CartHandler    *handler.CartHandler
	StoreHandler   *handler.StoreHandler
	ContactHandler *handler.ContactHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	saleHandler    *handler.SaleHandler
	cartHandler    *handler.CartHandler
	storeHandler   *handler.StoreHandler
	contactHandler *handler.ContactHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		saleHandler:    params.SaleHandler,
		cartHandler:    params.CartHandler,
		storeHandler:   params.StoreHandler,
		contactHandler: params.ContactHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/login", r.authHandler.Login)

	apiV1 := e.Group("/api/v1")

	// Public storefront
	storeGroup := apiV1.Group("/store")
	{
		storeGroup.GET("/config", r.storeHandler.Config)
		storeGroup.GET("/settings", r.storeHandler.Settings)
		storeGroup.GET("/qr", r.storeHandler.QR)
	}

	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/previews/:ref", r.catalogHandler.Preview)

	cartsGroup := apiV1.Group("/carts")
	{
		cartsGroup.POST("", r.cartHandler.Open)
		cartsGroup.GET("/:id", r.cartHandler.Get)
		cartsGroup.POST("/:id/items", r.cartHandler.AddItem)
		cartsGroup.PUT("/:id/items/:productId", r.cartHandler.SetQuantity)
		cartsGroup.DELETE("/:id/items/:productId", r.cartHandler.RemoveItem)
		cartsGroup.POST("/:id/checkout", r.cartHandler.Checkout)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))

	uploadLimit := echomiddleware.BodyLimit(r.uploadLimit())

	productsGroup := adminGroup.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListAll)
		productsGroup.POST("/refresh", r.catalogHandler.Refresh)
		productsGroup.POST("", r.catalogHandler.CreateProduct, uploadLimit)
		productsGroup.PATCH("/:id/status", r.catalogHandler.ToggleStatus)
		productsGroup.PATCH("/:id/offer", r.catalogHandler.ToggleOffer)
		productsGroup.PATCH("/:id/price", r.catalogHandler.UpdatePrice)
		productsGroup.PATCH("/:id/name", r.catalogHandler.UpdateName)
		productsGroup.PATCH("/:id/stock", r.catalogHandler.UpdateStock)
		productsGroup.PUT("/:id/image", r.catalogHandler.UpdateImage, uploadLimit)
		productsGroup.DELETE("/:id", r.catalogHandler.DeleteProduct)
	}
	adminGroup.POST("/stock/additions", r.catalogHandler.AddStock)
	adminGroup.GET("/notifications", r.catalogHandler.Notifications)

	salesGroup := adminGroup.Group("/sales")
	{
		salesGroup.GET("", r.saleHandler.History)
		salesGroup.GET("/stats", r.saleHandler.Stats)
		salesGroup.GET("/:id", r.saleHandler.GetSale)
		salesGroup.PATCH("/:id/status", r.saleHandler.ChangeStatus)
	}

	wizardsGroup := adminGroup.Group("/wizards")
	{
		wizardsGroup.POST("", r.saleHandler.OpenWizard)
		wizardsGroup.GET("/:id", r.saleHandler.GetWizard)
		wizardsGroup.DELETE("/:id", r.saleHandler.CloseWizard)
		wizardsGroup.GET("/:id/candidates", r.saleHandler.Candidates)
		wizardsGroup.POST("/:id/toggle", r.saleHandler.Toggle)
		wizardsGroup.POST("/:id/advance", r.saleHandler.Advance)
		wizardsGroup.POST("/:id/back", r.saleHandler.Back)
		wizardsGroup.PUT("/:id/lines/:productId", r.saleHandler.SetQuantity)
		wizardsGroup.POST("/:id/lines/:productId/step", r.saleHandler.Step)
		wizardsGroup.PUT("/:id/lines/:productId/input", r.saleHandler.Input)
		wizardsGroup.POST("/:id/lines/:productId/commit", r.saleHandler.Commit)
		wizardsGroup.POST("/:id/submit", r.saleHandler.Submit)
	}

	contactsGroup := adminGroup.Group("/contacts")
	{
		contactsGroup.GET("", r.contactHandler.List)
		contactsGroup.PUT("", r.contactHandler.Save)
		contactsGroup.POST("", r.contactHandler.Add)
		contactsGroup.DELETE("/:number", r.contactHandler.Remove)
	}
}

func (r *router) uploadLimit() string {
	if r.config.ImageHost != nil && r.config.ImageHost.MaxUploadSize != "" {
		return r.config.ImageHost.MaxUploadSize
	}

	return "5MB"
}
