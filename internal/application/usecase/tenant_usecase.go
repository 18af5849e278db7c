package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// TenantUseCase operaciones de plataforma sobre tenants (cross-tenant).
// Todas llegan detrás del check PlatformOnly; aquí no hay contexto de tenant.
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso de tenants.
func NewTenantUseCase(tenantRepo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo}
}

// Create da de alta un tenant en el plan free.
func (uc *TenantUseCase) Create(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.tenantRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		PaymentTier: entity.TierFree,
		Status:      entity.TenantActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// List devuelve tenants con paginación.
func (uc *TenantUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TenantListResponse, error) {
	page.DefaultPage()
	tenants, err := uc.tenantRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Tenants: out,
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SetPaymentTier habilita un plan de pago para el tenant.
func (uc *TenantUseCase) SetPaymentTier(ctx context.Context, tenantID string, in dto.SetPaymentTierRequest) error {
	switch in.Tier {
	case entity.TierFree, entity.TierStandard, entity.TierPremium:
	default:
		return domain.ErrInvalidInput
	}
	return uc.tenantRepo.SetPaymentTier(ctx, tenantID, in.Tier)
}

// SetStatus suspende o reactiva un tenant. Un tenant suspendido conserva sus
// datos pero sus usuarios dejan de poder registrarse u operar.
func (uc *TenantUseCase) SetStatus(ctx context.Context, tenantID string, in dto.SetTenantStatusRequest) error {
	switch in.Status {
	case entity.TenantActive, entity.TenantSuspended, entity.TenantInactive:
	default:
		return domain.ErrInvalidInput
	}
	existing, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.tenantRepo.SetStatus(ctx, tenantID, in.Status)
}

func toTenantResponse(t *entity.Tenant) dto.TenantResponse {
	return dto.TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		PaymentTier: t.PaymentTier,
		Status:      t.Status,
	}
}
