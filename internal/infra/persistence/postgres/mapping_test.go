package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/model"
)

func TestPatchColumns(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 5, 14, 0, 0, 0, time.UTC)
	price := 8900.0
	active := false
	stock := -1.0

	tests := []struct {
		name  string
		patch entity.ProductPatch
		want  map[string]any
	}{
		{
			name:  "empty patch only touches updated_at",
			patch: entity.ProductPatch{},
			want:  map[string]any{"updated_at": now},
		},
		{
			name:  "price and active",
			patch: entity.ProductPatch{Price: &price, Active: &active},
			want:  map[string]any{"updated_at": now, "price": 8900.0, "active": false},
		},
		{
			name:  "stock is clamped",
			patch: entity.ProductPatch{Stock: &stock},
			want:  map[string]any{"updated_at": now, "stock": 0.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, patchColumns(tt.patch, now))
		})
	}
}

func TestSaleRoundTrip_KeepsItemPositions(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 5, 14, 32, 0, 0, time.UTC)
	sale := entity.NewSale("sale_20241105_1432", now, []entity.SaleLine{
		{ProductID: "a", ProductName: "Asado", Quantity: 2, UnitPrice: 100, Category: "vacuno"},
		{ProductID: "b", ProductName: "Chorizo", Quantity: 3, UnitPrice: 50, Category: "embutidos"},
	}, "", entity.SaleStatusCompleted)

	saleM := fromSaleDomain("demo", sale, now)
	require.Len(t, saleM.Items, 2)
	assert.Nil(t, saleM.Notes)
	assert.Equal(t, 1, saleM.Items[0].Position)
	assert.Equal(t, 2, saleM.Items[1].Position)
	assert.Equal(t, "demo", saleM.Items[1].TenantID)
	assert.Equal(t, sale.ID, saleM.Items[1].SaleID)

	back := toSaleDomain(saleM)
	assert.Equal(t, sale, back)
}

func TestToSaleDomain_UnknownStatus(t *testing.T) {
	t.Parallel()

	notes := "fiado"
	sale := toSaleDomain(&model.SaleModel{ID: "s1", Status: "archived", Notes: &notes})

	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, "fiado", sale.Notes)
	assert.Nil(t, sale.Items)
}

func TestToProductDomain_Defaults(t *testing.T) {
	t.Parallel()

	product := toProductDomain(&model.ProductModel{ID: "p1", Stock: -2})

	assert.Equal(t, entity.DefaultProductName, product.Name)
	assert.Equal(t, entity.DefaultProductCategory, product.Category)
	assert.Zero(t, product.Stock)
}

func TestContactsMapping(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)

	contactMs := fromContactsDomain("demo", []entity.WhatsAppContact{
		{Name: "Nacho", Role: entity.ContactRoleOwner, Number: "5491155550000", CreatedAt: created},
		{Name: "Juan", Role: entity.ContactRoleSeller, Number: "5491144443333"},
	}, now)

	require.Len(t, contactMs, 2)
	assert.Equal(t, created, contactMs[0].CreatedAt)
	assert.Equal(t, now, contactMs[1].CreatedAt)
	assert.Equal(t, 1, contactMs[1].Position)
	assert.NotEqual(t, contactMs[0].ID, contactMs[1].ID)

	tenant := toTenantDomain(&model.TenantModel{ID: "demo", Name: "Demo", Instagram: "@demo"}, contactMs)
	assert.Equal(t, "@demo", tenant.Social.Instagram)
	require.Len(t, tenant.Contacts, 2)
	assert.Equal(t, entity.ContactRoleSeller, tenant.Contacts[1].Role)
	assert.Equal(t, "5491144443333", tenant.Contacts[1].Number)
}
