package postgres

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/model"
)

func fromProductDomain(tenantID string, product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:        product.ID,
		TenantID:  tenantID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Image:     product.Image,
		Active:    product.Active,
		Offer:     product.Offer,
		Stock:     entity.ClampStock(product.Stock),
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:        productM.ID,
		Name:      productM.Name,
		Price:     productM.Price,
		Category:  productM.Category,
		Image:     productM.Image,
		Active:    productM.Active,
		Offer:     productM.Offer,
		Stock:     entity.ClampStock(productM.Stock),
		CreatedAt: productM.CreatedAt,
		UpdatedAt: productM.UpdatedAt,
	}
	if product.Name == "" {
		product.Name = entity.DefaultProductName
	}
	if product.Category == "" {
		product.Category = entity.DefaultProductCategory
	}

	return product
}

// patchColumns maps a partial update to the column set passed to Updates.
func patchColumns(patch entity.ProductPatch, now time.Time) map[string]any {
	columns := map[string]any{"updated_at": now}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Price != nil {
		columns["price"] = *patch.Price
	}
	if patch.Category != nil {
		columns["category"] = *patch.Category
	}
	if patch.Image != nil {
		columns["image"] = *patch.Image
	}
	if patch.Active != nil {
		columns["active"] = *patch.Active
	}
	if patch.Offer != nil {
		columns["offer"] = *patch.Offer
	}
	if patch.Stock != nil {
		columns["stock"] = entity.ClampStock(*patch.Stock)
	}

	return columns
}

func fromSaleDomain(tenantID string, sale *entity.Sale, now time.Time) *model.SaleModel {
	saleM := &model.SaleModel{
		TenantID:      tenantID,
		ID:            sale.ID,
		Date:          sale.Date,
		TotalAmount:   sale.TotalAmount,
		TotalItems:    sale.TotalItems,
		TotalQuantity: sale.TotalQuantity,
		Status:        string(sale.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sale.Notes != "" {
		notes := sale.Notes
		saleM.Notes = &notes
	}
	saleM.Items = make([]model.SaleItemModel, 0, len(sale.Items))
	for idx, item := range sale.Items {
		position, err := strconv.Atoi(item.ID)
		if err != nil {
			position = idx + 1
		}
		saleM.Items = append(saleM.Items, model.SaleItemModel{
			TenantID:    tenantID,
			SaleID:      sale.ID,
			Position:    position,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Category:    item.Category,
			CreatedAt:   now,
		})
	}

	return saleM
}

func toSaleDomain(saleM *model.SaleModel) *entity.Sale {
	sale := &entity.Sale{
		ID:            saleM.ID,
		Date:          saleM.Date,
		TotalAmount:   saleM.TotalAmount,
		TotalItems:    saleM.TotalItems,
		TotalQuantity: saleM.TotalQuantity,
		Status:        entity.SaleStatus(saleM.Status),
	}
	if !sale.Status.IsValid() {
		sale.Status = entity.SaleStatusCompleted
	}
	if saleM.Notes != nil {
		sale.Notes = *saleM.Notes
	}
	if len(saleM.Items) > 0 {
		sale.Items = make([]*entity.SaleItem, 0, len(saleM.Items))
		for _, itemM := range saleM.Items {
			sale.Items = append(sale.Items, &entity.SaleItem{
				ID:          strconv.Itoa(itemM.Position),
				ProductID:   itemM.ProductID,
				ProductName: itemM.ProductName,
				Quantity:    itemM.Quantity,
				UnitPrice:   itemM.UnitPrice,
				Subtotal:    itemM.Subtotal,
				Category:    itemM.Category,
			})
		}
	}

	return sale
}

func toTenantDomain(tenantM *model.TenantModel, contactMs []*model.TenantContactModel) *entity.Tenant {
	tenant := &entity.Tenant{
		ID:     tenantM.ID,
		Name:   tenantM.Name,
		URL:    tenantM.URL,
		Logo:   tenantM.Logo,
		Banner: tenantM.Banner,
		Contact: entity.TenantContact{
			Phone:   tenantM.ContactPhone,
			Email:   tenantM.ContactEmail,
			Address: tenantM.ContactAddress,
		},
		Social: entity.TenantSocial{
			Instagram: tenantM.Instagram,
			Facebook:  tenantM.Facebook,
			WhatsApp:  tenantM.WhatsApp,
		},
		Hours:    tenantM.Hours,
		Contacts: make([]entity.WhatsAppContact, 0, len(contactMs)),
	}
	for _, contactM := range contactMs {
		tenant.Contacts = append(tenant.Contacts, entity.WhatsAppContact{
			Name:      contactM.Name,
			Role:      entity.ContactRole(contactM.Role),
			Number:    contactM.Number,
			CreatedAt: contactM.CreatedAt,
			UpdatedAt: contactM.UpdatedAt,
		})
	}

	return tenant
}

func fromContactsDomain(tenantID string, contacts []entity.WhatsAppContact, now time.Time) []*model.TenantContactModel {
	contactMs := make([]*model.TenantContactModel, 0, len(contacts))
	for idx, contact := range contacts {
		createdAt := contact.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		contactMs = append(contactMs, &model.TenantContactModel{
			ID:        uuid.New(),
			TenantID:  tenantID,
			Number:    contact.Number,
			Name:      contact.Name,
			Role:      string(contact.Role),
			Position:  idx,
			CreatedAt: createdAt,
			UpdatedAt: now,
		})
	}

	return contactMs
}
