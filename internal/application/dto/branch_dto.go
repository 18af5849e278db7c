package dto

// CreateBranchRequest alta de sucursal.
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BranchResponse proyección pública de una sucursal.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BranchListResponse listado de sucursales del tenant.
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Page     PageResponse     `json:"page"`
}
