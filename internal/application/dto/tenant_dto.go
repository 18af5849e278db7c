package dto

// CreateTenantRequest alta de tenant (solo plataforma).
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,lowercase"`
}

// SetPaymentTierRequest cambio de plan de pago (solo plataforma).
type SetPaymentTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free standard premium"`
}

// SetTenantStatusRequest suspensión o reactivación de un tenant (solo plataforma).
type SetTenantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended inactive"`
}

// TenantResponse proyección pública de un tenant.
type TenantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	PaymentTier string `json:"payment_tier"`
	Status      string `json:"status"`
}

// TenantListResponse listado de tenants (solo plataforma).
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	Page    PageResponse     `json:"page"`
}
