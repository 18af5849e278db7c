package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

// tenantSetting parámetro de sesión que leen las políticas RLS
// (current_setting('app.tenant_id', true)). Ver migrations/0001_init.up.sql.
const tenantSetting = "app.tenant_id"

// querier superficie mínima de consulta común a conexión y transacción.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TenantPool emite conexiones con el filtro de aislamiento por tenant activo.
//
// Cada Acquire lee el tenant del contexto, fija app.tenant_id en la sesión y
// las políticas RLS restringen toda consulta posterior a las filas de ese
// tenant, por debajo del nivel donde se escriben los queries: ningún repo
// puede optar por saltarse el filtro. Si el contexto no trae tenant (o trae
// uno malformado) se falla cerrado con domain.ErrTenantNotResolved; nunca se
// degrada a una conexión sin filtro.
type TenantPool struct {
	pool *pgxpool.Pool
}

// NewTenantPool construye el pool con aislamiento sobre el pool pgx base.
func NewTenantPool(pool *pgxpool.Pool) *TenantPool {
	return &TenantPool{pool: pool}
}

// Acquire obtiene una conexión con app.tenant_id fijado al tenant del contexto.
// El caller debe liberar con Release en todas las rutas de salida (defer).
func (p *TenantPool) Acquire(ctx context.Context) (*TenantConn, error) {
	tenantID, ok := tenantctx.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantNotResolved
	}
	if _, err := uuid.Parse(tenantID); err != nil {
		return nil, fmt.Errorf("%w: identificador malformado", domain.ErrTenantNotResolved)
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire conexión: %w", err)
	}
	// Mismo valor dos veces es idempotente: set_config sobreescribe con el mismo id.
	if _, err := conn.Exec(ctx, `SELECT set_config($1, $2, false)`, tenantSetting, tenantID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("activar filtro de tenant: %w", err)
	}
	return &TenantConn{conn: conn, tenantID: tenantID}, nil
}

// TenantConn conexión con el filtro de aislamiento activo.
type TenantConn struct {
	conn     *pgxpool.Conn
	tenantID string
}

// TenantID devuelve el tenant al que quedó atada la conexión.
func (c *TenantConn) TenantID() string { return c.tenantID }

func (c *TenantConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, sql, args...)
}

func (c *TenantConn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

func (c *TenantConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.conn.QueryRow(ctx, sql, args...)
}

// Begin abre una transacción sobre la conexión ya filtrada.
func (c *TenantConn) Begin(ctx context.Context) (pgx.Tx, error) {
	return c.conn.Begin(ctx)
}

// Release limpia app.tenant_id y devuelve la conexión al pool. La limpieza usa
// un contexto propio: aunque la petición haya sido cancelada, el filtro no
// puede quedar pegado en una conexión que el pool reutilizará para otro tenant.
// Si la limpieza falla, la conexión se destruye en lugar de reutilizarse.
func (c *TenantConn) Release() {
	if c.conn == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := c.conn.Exec(ctx, `SELECT set_config($1, '', false)`, tenantSetting); err != nil {
		_ = c.conn.Conn().Close(ctx)
	}
	c.conn.Release()
	c.conn = nil
}

// withScope ejecuta fn con el querier transaccional si existe (repos atados a
// una tx de TxRunner) o con una conexión filtrada recién adquirida si no.
func withScope(ctx context.Context, db *TenantPool, q querier, fn func(q querier) error) error {
	if q != nil {
		return fn(q)
	}
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return fn(conn)
}
