package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	db      *TenantPool
	q       querier
	auditor tenantctx.Auditor
}

// NewInventoryRepository construye el adaptador de persistencia para existencias.
func NewInventoryRepository(db *TenantPool) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// newInventoryRepoTx variante atada a una transacción ya filtrada (TxRunner).
func newInventoryRepoTx(q querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert inserta o actualiza las existencias de (branch, product) en el tenant activo.
func (r *InventoryRepo) Upsert(ctx context.Context, level *entity.InventoryLevel) error {
	if auditor, ok := r.auditor.CurrentTenant(ctx); ok {
		level.CreatedBy = auditor
		level.UpdatedBy = auditor
	}
	return withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			INSERT INTO inventory_levels (id, tenant_id, branch_id, product_id, quantity, reorder_level, created_by, updated_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NULLIF($8, '')::uuid, $9, $10)
			ON CONFLICT (tenant_id, branch_id, product_id) DO UPDATE SET
				quantity      = EXCLUDED.quantity,
				reorder_level = EXCLUDED.reorder_level,
				updated_by    = EXCLUDED.updated_by,
				updated_at    = EXCLUDED.updated_at`
		_, err := q.Exec(ctx, query,
			level.ID, level.TenantID, level.BranchID, level.ProductID,
			level.Quantity, level.ReorderLevel,
			level.CreatedBy, level.UpdatedBy, level.CreatedAt, level.UpdatedAt,
		)
		if err != nil {
			if isRLSViolation(err) {
				return domain.ErrForbidden
			}
			return fmt.Errorf("upsert inventory level: %w", err)
		}
		return nil
	})
}

// GetByBranchAndProduct obtiene las existencias de un producto en una sucursal.
func (r *InventoryRepo) GetByBranchAndProduct(ctx context.Context, branchID, productID string) (*entity.InventoryLevel, error) {
	var level *entity.InventoryLevel
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			SELECT id, tenant_id, branch_id, product_id, quantity, reorder_level,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM inventory_levels WHERE branch_id = $1 AND product_id = $2`
		var row entity.InventoryLevel
		err := q.QueryRow(ctx, query, branchID, productID).Scan(
			&row.ID, &row.TenantID, &row.BranchID, &row.ProductID,
			&row.Quantity, &row.ReorderLevel,
			&row.CreatedBy, &row.UpdatedBy, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("get inventory level: %w", err)
		}
		level = &row
		return nil
	})
	return level, err
}

// ListByBranch devuelve las existencias de una sucursal con paginación.
func (r *InventoryRepo) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*entity.InventoryLevel, error) {
	var list []*entity.InventoryLevel
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			SELECT id, tenant_id, branch_id, product_id, quantity, reorder_level,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM inventory_levels WHERE branch_id = $1
			ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
		rows, err := q.Query(ctx, query, branchID, limit, offset)
		if err != nil {
			return fmt.Errorf("list inventory levels: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var lv entity.InventoryLevel
			if err := rows.Scan(&lv.ID, &lv.TenantID, &lv.BranchID, &lv.ProductID, &lv.Quantity, &lv.ReorderLevel, &lv.CreatedBy, &lv.UpdatedBy, &lv.CreatedAt, &lv.UpdatedAt); err != nil {
				return fmt.Errorf("scan inventory level: %w", err)
			}
			list = append(list, &lv)
		}
		return rows.Err()
	})
	return list, err
}

// Count cuenta los registros de existencias del tenant activo (hecho de onboarding).
func (r *InventoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		if err := q.QueryRow(ctx, `SELECT count(*) FROM inventory_levels`).Scan(&count); err != nil {
			return fmt.Errorf("count inventory levels: %w", err)
		}
		return nil
	})
	return count, err
}
