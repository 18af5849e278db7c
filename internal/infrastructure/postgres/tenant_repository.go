package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Asegura que TenantRepo implementa repository.TenantRepository.
var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
// Usa el pool SIN filtro: es la superficie de plataforma (cross-tenant) y solo
// se alcanza detrás del check PlatformOnly.
type TenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, slug, payment_tier, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		tenant.ID, tenant.Name, tenant.Slug, tenant.PaymentTier, tenant.Status,
		tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, payment_tier, status, created_at, updated_at
		FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Slug, &t.PaymentTier, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// GetBySlug obtiene un tenant por slug.
func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, payment_tier, status, created_at, updated_at
		FROM tenants WHERE slug = $1`
	var t entity.Tenant
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&t.ID, &t.Name, &t.Slug, &t.PaymentTier, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return &t, nil
}

// List devuelve tenants con paginación.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, payment_tier, status, created_at, updated_at
		FROM tenants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.PaymentTier, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SetPaymentTier cambia el plan de pago del tenant (operación de plataforma).
func (r *TenantRepo) SetPaymentTier(ctx context.Context, id, tier string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE tenants SET payment_tier = $2, updated_at = now() WHERE id = $1`, id, tier)
	if err != nil {
		return fmt.Errorf("set payment tier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus cambia el estado del tenant (active, suspended, inactive).
func (r *TenantRepo) SetStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE tenants SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set tenant status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
