package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un tenant (medicamentos, retail).
type Product struct {
	ID        string
	TenantID  string
	SKU       string // único por tenant
	Name      string
	Category  string
	Price     decimal.Decimal // precio de venta, NUMERIC en DB
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
