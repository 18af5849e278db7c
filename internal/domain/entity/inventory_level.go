package entity

import "time"

// InventoryLevel existencias de un producto en una sucursal.
// Un registro por (tenant, branch, product); se hace upsert sobre esa clave.
type InventoryLevel struct {
	ID           string
	TenantID     string
	BranchID     string
	ProductID    string
	Quantity     int
	ReorderLevel int // umbral de reposición
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
