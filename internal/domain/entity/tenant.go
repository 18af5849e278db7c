package entity

import "time"

// Estados válidos para Tenant.
const (
	TenantActive    = "active"
	TenantSuspended = "suspended"
	TenantInactive  = "inactive"
)

// Planes de pago disponibles (deben coincidir con el CHECK de la tabla tenants).
const (
	TierFree     = "free"
	TierStandard = "standard"
	TierPremium  = "premium"
)

// Tenant representa una organización/farmacia del sistema. Todos los datos de negocio
// se particionan por TenantID; las operaciones sobre esta entidad son de plataforma
// (cross-tenant) y solo las ejecuta PLATFORM_ADMIN.
type Tenant struct {
	ID          string
	Name        string
	Slug        string // identificador legible, único (subdominio)
	PaymentTier string // ver constantes Tier*
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
