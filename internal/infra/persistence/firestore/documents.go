// Package firestore implements the repositories on Cloud Firestore. Every tenant lives under
// butcheries/{tenantId} with products and sales as subcollections.
package firestore

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

// Document field names.
const (
	fieldName            = "name"
	fieldPrice           = "price"
	fieldCategory        = "category"
	fieldImage           = "image"
	fieldActive          = "active"
	fieldOffer           = "offer"
	fieldIsOffer         = "isOffer"
	fieldStock           = "stock"
	fieldCreatedAt       = "createdAt"
	fieldUpdatedAt       = "updatedAt"
	fieldURL             = "url"
	fieldDate            = "date"
	fieldStatus          = "status"
	fieldWhatsAppNumbers = "whatsappNumbers"
)

// productFromData maps a product document, filling the read defaults for legacy records:
// missing name, category or active flag, string prices and the older isOffer field.
func productFromData(id string, data map[string]any) *entity.Product {
	product := &entity.Product{
		ID:       id,
		Name:     stringField(data, fieldName),
		Price:    priceField(data[fieldPrice]),
		Category: stringField(data, fieldCategory),
		Image:    stringField(data, fieldImage),
		Active:   boolField(data, fieldActive, true),
		Stock:    entity.ClampStock(numberField(data[fieldStock])),
	}
	if product.Name == "" {
		product.Name = entity.DefaultProductName
	}
	if product.Category == "" {
		product.Category = entity.DefaultProductCategory
	}
	if _, ok := data[fieldIsOffer]; ok {
		product.Offer = boolField(data, fieldIsOffer, false)
	} else {
		product.Offer = boolField(data, fieldOffer, false)
	}
	product.CreatedAt = timeField(data, fieldCreatedAt)
	product.UpdatedAt = timeField(data, fieldUpdatedAt)

	return product
}

// productToData maps a new product. offer is mirrored to isOffer so older clients keep reading it.
func productToData(product *entity.Product) map[string]any {
	return map[string]any{
		fieldName:      product.Name,
		fieldPrice:     product.Price,
		fieldCategory:  product.Category,
		fieldImage:     product.Image,
		fieldActive:    product.Active,
		fieldOffer:     product.Offer,
		fieldIsOffer:   product.Offer,
		fieldStock:     product.Stock,
		fieldCreatedAt: firestore.ServerTimestamp,
		fieldUpdatedAt: firestore.ServerTimestamp,
	}
}

// patchUpdates maps a partial update to field updates, always touching updatedAt.
func patchUpdates(patch entity.ProductPatch) []firestore.Update {
	var updates []firestore.Update
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: fieldName, Value: *patch.Name})
	}
	if patch.Price != nil {
		updates = append(updates, firestore.Update{Path: fieldPrice, Value: *patch.Price})
	}
	if patch.Category != nil {
		updates = append(updates, firestore.Update{Path: fieldCategory, Value: *patch.Category})
	}
	if patch.Image != nil {
		updates = append(updates, firestore.Update{Path: fieldImage, Value: *patch.Image})
	}
	if patch.Active != nil {
		updates = append(updates, firestore.Update{Path: fieldActive, Value: *patch.Active})
	}
	if patch.Offer != nil {
		updates = append(updates,
			firestore.Update{Path: fieldOffer, Value: *patch.Offer},
			firestore.Update{Path: fieldIsOffer, Value: *patch.Offer},
		)
	}
	if patch.Stock != nil {
		updates = append(updates, firestore.Update{Path: fieldStock, Value: entity.ClampStock(*patch.Stock)})
	}

	return append(updates, firestore.Update{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp})
}

func saleFromData(id string, data map[string]any) *entity.Sale {
	status := entity.SaleStatus(stringField(data, fieldStatus))
	if !status.IsValid() {
		status = entity.SaleStatusCompleted
	}

	return &entity.Sale{
		ID:            id,
		Date:          timeField(data, fieldDate),
		TotalAmount:   numberField(data["totalAmount"]),
		TotalItems:    int(numberField(data["totalItems"])),
		TotalQuantity: numberField(data["totalQuantity"]),
		Status:        status,
		Notes:         stringField(data, "notes"),
	}
}

func saleToData(sale *entity.Sale) map[string]any {
	var notes any
	if sale.Notes != "" {
		notes = sale.Notes
	}

	return map[string]any{
		fieldDate:       sale.Date,
		"totalAmount":   sale.TotalAmount,
		"totalItems":    sale.TotalItems,
		"totalQuantity": sale.TotalQuantity,
		fieldStatus:     string(sale.Status),
		"notes":         notes,
		fieldCreatedAt:  firestore.ServerTimestamp,
		fieldUpdatedAt:  firestore.ServerTimestamp,
	}
}

func saleItemFromData(id string, data map[string]any) *entity.SaleItem {
	return &entity.SaleItem{
		ID:          id,
		ProductID:   stringField(data, "productId"),
		ProductName: stringField(data, "productName"),
		Quantity:    numberField(data["quantity"]),
		UnitPrice:   numberField(data["unitPrice"]),
		Subtotal:    numberField(data["subtotal"]),
		Category:    stringField(data, fieldCategory),
	}
}

func saleItemToData(item *entity.SaleItem) map[string]any {
	return map[string]any{
		"productId":    item.ProductID,
		"productName":  item.ProductName,
		"quantity":     item.Quantity,
		"unitPrice":    item.UnitPrice,
		"subtotal":     item.Subtotal,
		fieldCategory:  item.Category,
		fieldCreatedAt: firestore.ServerTimestamp,
	}
}

// itemPosition orders items by their positional id; non-numeric ids sort last.
func itemPosition(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return int(^uint(0) >> 1)
	}

	return n
}

func tenantFromData(id string, data map[string]any) *entity.Tenant {
	tenant := &entity.Tenant{
		ID:     id,
		Name:   stringField(data, fieldName),
		URL:    stringField(data, fieldURL),
		Logo:   stringField(data, "logo"),
		Banner: stringField(data, "banner"),
	}
	if contact, ok := data["contact"].(map[string]any); ok {
		tenant.Contact = entity.TenantContact{
			Phone:   stringField(contact, "phone"),
			Email:   stringField(contact, "email"),
			Address: stringField(contact, "address"),
		}
	}
	if social, ok := data["social"].(map[string]any); ok {
		tenant.Social = entity.TenantSocial{
			Instagram: stringField(social, "instagram"),
			Facebook:  stringField(social, "facebook"),
			WhatsApp:  stringField(social, "whatsapp"),
		}
	}
	if hours, ok := data["hours"].([]any); ok {
		for _, h := range hours {
			if s, ok := h.(string); ok {
				tenant.Hours = append(tenant.Hours, s)
			}
		}
	}
	tenant.Contacts = contactsFromData(data[fieldWhatsAppNumbers])

	return tenant
}

// contactsFromData reads the whatsappNumbers array, normalizing every stored number.
func contactsFromData(raw any) []entity.WhatsAppContact {
	entries, ok := raw.([]any)
	if !ok {
		return []entity.WhatsAppContact{}
	}

	contacts := make([]entity.WhatsAppContact, 0, len(entries))
	for _, entry := range entries {
		data, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		contacts = append(contacts, entity.WhatsAppContact{
			Name:      stringField(data, fieldName),
			Role:      entity.ContactRole(stringField(data, "role")),
			Number:    util.NormalizePhone(stringField(data, "number")),
			CreatedAt: timeField(data, fieldCreatedAt),
			UpdatedAt: timeField(data, fieldUpdatedAt),
		})
	}

	return contacts
}

func contactsToData(contacts []entity.WhatsAppContact, now time.Time) []map[string]any {
	out := make([]map[string]any, 0, len(contacts))
	for _, contact := range contacts {
		createdAt := contact.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		out = append(out, map[string]any{
			fieldName:      contact.Name,
			"role":         string(contact.Role),
			"number":       contact.Number,
			fieldCreatedAt: createdAt,
			fieldUpdatedAt: now,
		})
	}

	return out
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)

	return strings.TrimSpace(s)
}

func boolField(data map[string]any, key string, fallback bool) bool {
	b, ok := data[key].(bool)
	if !ok {
		return fallback
	}

	return b
}

func timeField(data map[string]any, key string) time.Time {
	t, _ := data[key].(time.Time)

	return t
}

func numberField(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// priceField accepts numeric prices and legacy string prices such as "1.234,56".
func priceField(v any) float64 {
	if s, ok := v.(string); ok {
		price, err := util.ParsePrice(s)
		if err != nil {
			return 0
		}

		return price
	}

	return numberField(v)
}
