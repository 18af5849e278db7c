package dto

// SetInventoryRequest fija existencias de un producto en una sucursal.
type SetInventoryRequest struct {
	BranchID     string `json:"branch_id" validate:"required,uuid"`
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"min=0"`
	ReorderLevel int    `json:"reorder_level" validate:"min=0"`
}

// InventoryLevelResponse existencias de un producto en una sucursal.
type InventoryLevelResponse struct {
	ID           string `json:"id"`
	BranchID     string `json:"branch_id"`
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
}

// InventoryListResponse listado de existencias por sucursal.
type InventoryListResponse struct {
	Levels []InventoryLevelResponse `json:"levels"`
	Page   PageResponse             `json:"page"`
}
