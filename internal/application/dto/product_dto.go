package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	SKU      string          `json:"sku" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse proyección pública de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// ProductListResponse listado de productos del tenant.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
