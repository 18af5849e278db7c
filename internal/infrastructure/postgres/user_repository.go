package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
//
// Create y GetByEmail usan el pool sin filtro: son la frontera de
// autenticación y corren antes de que exista contexto de tenant en la
// petición. El resto va por TenantPool y falla cerrado sin contexto.
type UserRepo struct {
	pool *pgxpool.Pool
	db   *TenantPool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool, db *TenantPool) *UserRepo {
	return &UserRepo{pool: pool, db: db}
}

// Create persiste un nuevo usuario (frontera de autenticación, sin filtro).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, password_hash, name, role, active, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.TenantID, user.Email, user.PasswordHash, user.Name, user.Role, user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email (lookup de login, sin filtro).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, COALESCE(tenant_id::text, ''), email, password_hash, name, role, active, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID dentro del tenant activo.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u *entity.User
	err := withScope(ctx, r.db, nil, func(q querier) error {
		query := `
			SELECT id, COALESCE(tenant_id::text, ''), email, password_hash, name, role, active, created_at, updated_at
			FROM users WHERE id = $1`
		var row entity.User
		err := q.QueryRow(ctx, query, id).Scan(
			&row.ID, &row.TenantID, &row.Email, &row.PasswordHash, &row.Name, &row.Role, &row.Active,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("get user: %w", err)
		}
		u = &row
		return nil
	})
	return u, err
}

// ListByTenant devuelve los usuarios del tenant activo con paginación.
// El filtro RLS acota el resultado; no hace falta repetir el predicado.
func (r *UserRepo) ListByTenant(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	err := withScope(ctx, r.db, nil, func(q querier) error {
		query := `
			SELECT id, COALESCE(tenant_id::text, ''), email, password_hash, name, role, active, created_at, updated_at
			FROM users WHERE tenant_id IS NOT NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err := q.Query(ctx, query, limit, offset)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var u entity.User
			if err := rows.Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			list = append(list, &u)
		}
		return rows.Err()
	})
	return list, err
}

// CountByTenant cuenta los usuarios del tenant activo (hecho de onboarding).
func (r *UserRepo) CountByTenant(ctx context.Context) (int, error) {
	var count int
	err := withScope(ctx, r.db, nil, func(q querier) error {
		if err := q.QueryRow(ctx, `SELECT count(*) FROM users WHERE tenant_id IS NOT NULL`).Scan(&count); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	return count, err
}
