package cart

import (
	"net/url"
	"strings"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

// WhatsAppBaseURL is the click-to-chat endpoint used for orders and contact links.
const WhatsAppBaseURL = "https://wa.me/"

// ValidateCustomer checks the checkout form.
func ValidateCustomer(customer entity.CustomerInfo) error {
	var missing []string
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(customer.Location) == "" {
		missing = append(missing, "ubicación")
	}
	if strings.TrimSpace(customer.PaymentMethod) == "" {
		missing = append(missing, "método de pago")
	}
	if len(missing) > 0 {
		return domainerrors.ErrInvalidCustomer.WithDetails(strings.Join(missing, ", "))
	}

	return nil
}

// ComposeOrder renders the order message sent to the store over WhatsApp.
func ComposeOrder(items []entity.CartItem, customer entity.CustomerInfo) (string, error) {
	if len(items) == 0 {
		return "", domainerrors.ErrEmptyCart
	}
	if err := ValidateCustomer(customer); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("*Nuevo Pedido*\n\n")
	b.WriteString("*Cliente:* " + strings.TrimSpace(customer.Name) + "\n")
	b.WriteString("*Ubicación:* " + strings.TrimSpace(customer.Location) + "\n")
	b.WriteString("*Método de Pago:* " + strings.TrimSpace(customer.PaymentMethod) + "\n\n")
	b.WriteString("*Productos:*\n")
	for idx, item := range items {
		if idx > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + item.Name + ": " + util.FormatQuantity(item.Quantity) + "kg x $" +
			util.FormatPrice(item.Price) + " = $" + util.FormatPrice(entity.Subtotal(item.Quantity, item.Price)))
	}
	b.WriteString("\n\n*Total:* $" + util.FormatPrice(Total(items)))

	return b.String(), nil
}

// DeepLink returns the WhatsApp link that opens a chat with phone, optionally prefilled with message.
func DeepLink(phone, message string) string {
	link := WhatsAppBaseURL + util.NormalizePhone(phone)
	if message == "" {
		return link
	}

	// QueryEscape turns spaces into '+', which WhatsApp shows literally.
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
