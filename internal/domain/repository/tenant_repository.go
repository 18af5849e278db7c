package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// Superficie de plataforma: corre SIN filtro de aislamiento (cross-tenant),
// por eso solo debe invocarse detrás del check PlatformOnly.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	SetPaymentTier(ctx context.Context, id, tier string) error
	SetStatus(ctx context.Context, id, status string) error
}
