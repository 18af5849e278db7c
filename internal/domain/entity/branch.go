package entity

import "time"

// Branch representa una sucursal (punto de venta físico) de un tenant.
type Branch struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	CreatedBy string // tenant que creó el registro (auditoría)
	UpdatedBy string // tenant que modificó por última vez
	CreatedAt time.Time
	UpdatedAt time.Time
}
