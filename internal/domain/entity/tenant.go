package entity

import "time"

// ContactRole labels a WhatsApp contact of the tenant.
type ContactRole string

const (
	ContactRoleAdministrator ContactRole = "administrador"
	ContactRoleEmployee      ContactRole = "empleado"
	ContactRoleSeller        ContactRole = "vendedor"
	ContactRoleManager       ContactRole = "gerente"
	ContactRoleOwner         ContactRole = "propietario"
)

// ContactRoles lists the accepted roles in display order.
var ContactRoles = []ContactRole{
	ContactRoleAdministrator,
	ContactRoleEmployee,
	ContactRoleSeller,
	ContactRoleManager,
	ContactRoleOwner,
}

// IsValid checks if the role is one of the predefined labels.
func (r ContactRole) IsValid() bool {
	for _, role := range ContactRoles {
		if r == role {
			return true
		}
	}

	return false
}

// WhatsAppContact is an entry of the tenant's contact directory. Number is always normalized.
type WhatsAppContact struct {
	Name      string      `json:"name"`
	Role      ContactRole `json:"role"`
	Number    string      `json:"number"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// TenantContact is the public contact block of a tenant.
type TenantContact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// TenantSocial holds the tenant's social links.
type TenantSocial struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// Tenant is a single business sharing the backend.
type Tenant struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	URL      string            `json:"url"`
	Logo     string            `json:"logo,omitempty"`
	Banner   string            `json:"banner,omitempty"`
	Contact  TenantContact     `json:"contact"`
	Social   TenantSocial      `json:"social"`
	Hours    []string          `json:"hours,omitempty"`
	Contacts []WhatsAppContact `json:"contacts,omitempty"`
}
