package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
)

type cartService struct {
	carts   *cart.Registry
	actions *catalog.Actions
	store   usecase.StoreUsecase
	logger  *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(
	carts *cart.Registry,
	actions *catalog.Actions,
	store usecase.StoreUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		carts:   carts,
		actions: actions,
		store:   store,
		logger:  logger,
	}
}

func (s *cartService) Open(_ context.Context) (*cart.Summary, error) {
	summary := s.carts.Open().Summary()

	return &summary, nil
}

func (s *cartService) Get(_ context.Context, id string) (*cart.Summary, error) {
	return s.withCart(id, func(*cart.Cart) error { return nil })
}

func (s *cartService) AddItem(ctx context.Context, id, productID string) (*cart.Summary, error) {
	ensureCatalog(ctx, s.actions, s.logger)

	return s.withCart(id, func(c *cart.Cart) error {
		product, ok := s.actions.Store().Product(productID)
		if !ok {
			return domainerrors.ErrProductNotFound
		}

		return c.Add(product)
	})
}

func (s *cartService) SetQuantity(_ context.Context, id, productID string, quantity float64) (*cart.Summary, error) {
	return s.withCart(id, func(c *cart.Cart) error { return c.SetQuantity(productID, quantity) })
}

func (s *cartService) RemoveItem(_ context.Context, id, productID string) (*cart.Summary, error) {
	return s.withCart(id, func(c *cart.Cart) error {
		c.Remove(productID)

		return nil
	})
}

// Checkout composes the WhatsApp order for the store number and discards the cart.
func (s *cartService) Checkout(ctx context.Context, id string, customer entity.CustomerInfo) (*usecase.Checkout, error) {
	c, err := s.carts.Get(id)
	if err != nil {
		return nil, err
	}

	settings := s.store.Settings()
	if err := validatePaymentMethod(customer.PaymentMethod, settings.PaymentMethods); err != nil {
		return nil, err
	}

	summary := c.Summary()
	message, err := cart.ComposeOrder(summary.Items, customer)
	if err != nil {
		return nil, err
	}

	phone := settings.WhatsApp
	if tenant, err := s.store.Config(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Tenant config unavailable, using configured WhatsApp number",
			slog.Any("error", err),
		)
	} else if tenant.Social.WhatsApp != "" {
		phone = tenant.Social.WhatsApp
	}

	s.carts.Discard(id)
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Order composed",
		slog.String("cart_id", id),
		slog.Int("items", len(summary.Items)),
		slog.Float64("total", summary.Total),
	)

	return &usecase.Checkout{
		Message: message,
		Link:    cart.DeepLink(phone, message),
		Total:   summary.Total,
	}, nil
}

func (s *cartService) withCart(id string, fn func(*cart.Cart) error) (*cart.Summary, error) {
	c, err := s.carts.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	summary := c.Summary()

	return &summary, nil
}

// validatePaymentMethod accepts any method when none are configured.
func validatePaymentMethod(method string, allowed []string) error {
	method = strings.TrimSpace(method)
	if method == "" || len(allowed) == 0 {
		return nil
	}
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, method) {
			return nil
		}
	}

	return domainerrors.ErrInvalidCustomer.WithDetails("método de pago no admitido: " + method)
}
