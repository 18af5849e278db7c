package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
// Toda consulta corre con el filtro de aislamiento activo (TenantPool).
type BranchRepo struct {
	db      *TenantPool
	auditor tenantctx.Auditor
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(db *TenantPool) *BranchRepo {
	return &BranchRepo{db: db}
}

// Create persiste una nueva sucursal, estampando la auditoría de tenant.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	if auditor, ok := r.auditor.CurrentTenant(ctx); ok {
		branch.CreatedBy = auditor
		branch.UpdatedBy = auditor
	}
	return withScope(ctx, r.db, nil, func(q querier) error {
		query := `
			INSERT INTO branches (id, tenant_id, name, address, phone, created_by, updated_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, NULLIF($7, '')::uuid, $8, $9)`
		_, err := q.Exec(ctx, query,
			branch.ID, branch.TenantID, branch.Name, branch.Address, branch.Phone,
			branch.CreatedBy, branch.UpdatedBy, branch.CreatedAt, branch.UpdatedAt,
		)
		if err != nil {
			if isRLSViolation(err) {
				return domain.ErrForbidden
			}
			return fmt.Errorf("insert branch: %w", err)
		}
		return nil
	})
}

// GetByID obtiene una sucursal por ID dentro del tenant activo.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	var b *entity.Branch
	err := withScope(ctx, r.db, nil, func(q querier) error {
		query := `
			SELECT id, tenant_id, name, address, phone,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM branches WHERE id = $1`
		var row entity.Branch
		err := q.QueryRow(ctx, query, id).Scan(
			&row.ID, &row.TenantID, &row.Name, &row.Address, &row.Phone,
			&row.CreatedBy, &row.UpdatedBy, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("get branch: %w", err)
		}
		b = &row
		return nil
	})
	return b, err
}

// List devuelve las sucursales del tenant activo con paginación.
func (r *BranchRepo) List(ctx context.Context, limit, offset int) ([]*entity.Branch, error) {
	var list []*entity.Branch
	err := withScope(ctx, r.db, nil, func(q querier) error {
		query := `
			SELECT id, tenant_id, name, address, phone,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM branches ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err := q.Query(ctx, query, limit, offset)
		if err != nil {
			return fmt.Errorf("list branches: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var b entity.Branch
			if err := rows.Scan(&b.ID, &b.TenantID, &b.Name, &b.Address, &b.Phone, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
				return fmt.Errorf("scan branch: %w", err)
			}
			list = append(list, &b)
		}
		return rows.Err()
	})
	return list, err
}

// Count cuenta las sucursales del tenant activo (hecho de onboarding).
func (r *BranchRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := withScope(ctx, r.db, nil, func(q querier) error {
		if err := q.QueryRow(ctx, `SELECT count(*) FROM branches`).Scan(&count); err != nil {
			return fmt.Errorf("count branches: %w", err)
		}
		return nil
	})
	return count, err
}
