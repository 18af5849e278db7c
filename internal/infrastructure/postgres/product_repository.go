package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db      *TenantPool
	q       querier
	auditor tenantctx.Auditor
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *TenantPool) *ProductRepo {
	return &ProductRepo{db: db}
}

// newProductRepoTx variante atada a una transacción ya filtrada (TxRunner).
func newProductRepoTx(q querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto, estampando la auditoría de tenant.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if auditor, ok := r.auditor.CurrentTenant(ctx); ok {
		product.CreatedBy = auditor
		product.UpdatedBy = auditor
	}
	return withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			INSERT INTO products (id, tenant_id, sku, name, category, price, created_by, updated_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NULLIF($8, '')::uuid, $9, $10)`
		_, err := q.Exec(ctx, query,
			product.ID, product.TenantID, product.SKU, product.Name, product.Category, product.Price,
			product.CreatedBy, product.UpdatedBy, product.CreatedAt, product.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			if isRLSViolation(err) {
				return domain.ErrForbidden
			}
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	})
}

// GetByID obtiene un producto por ID dentro del tenant activo.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU dentro del tenant activo.
// El SKU solo es único por tenant; el filtro RLS hace el resto.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, `WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, where string, arg any) (*entity.Product, error) {
	var p *entity.Product
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			SELECT id, tenant_id, sku, name, category, price,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM products ` + where
		var row entity.Product
		err := q.QueryRow(ctx, query, arg).Scan(
			&row.ID, &row.TenantID, &row.SKU, &row.Name, &row.Category, &row.Price,
			&row.CreatedBy, &row.UpdatedBy, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("get product: %w", err)
		}
		p = &row
		return nil
	})
	return p, err
}

// List devuelve los productos del tenant activo con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		query := `
			SELECT id, tenant_id, sku, name, category, price,
			       COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''),
			       created_at, updated_at
			FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
		rows, err := q.Query(ctx, query, limit, offset)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p entity.Product
			if err := rows.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Category, &p.Price, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return fmt.Errorf("scan product: %w", err)
			}
			list = append(list, &p)
		}
		return rows.Err()
	})
	return list, err
}

// Count cuenta los productos del tenant activo (hecho de onboarding).
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := withScope(ctx, r.db, r.q, func(q querier) error {
		if err := q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})
	return count, err
}
