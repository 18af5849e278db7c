package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: PostgreSQL efímero en contenedor
// ──────────────────────────────────────────────────────────────────────────────

// startPostgres levanta un PostgreSQL efímero y devuelve su DSN. Si no hay
// Docker disponible el test se salta en lugar de fallar.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "farmacia",
			"POSTGRES_PASSWORD": "farmacia",
			"POSTGRES_DB":       "farmacia_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker no disponible: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://farmacia:farmacia@%s:%s/farmacia_test?sslmode=disable", host, port.Port())
}

// newSingleConnPool crea un pool con UNA sola conexión física: cada Acquire
// reutiliza la misma conexión, exactamente el escenario donde un filtro que
// sobreviviera al Release contaminaría al siguiente tenant.
func newSingleConnPool(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedTenant(t *testing.T, pool *pgxpool.Pool, id, slug string) {
	t.Helper()
	now := time.Now()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO tenants (id, name, slug, payment_tier, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'free', 'active', $4, $4)`,
		id, slug, slug, now)
	require.NoError(t, err)
}

func newBranch(tenantID, name string) *entity.Branch {
	now := time.Now()
	return &entity.Branch{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Test de aislamiento en vivo: las políticas RLS aplican aunque el rol de la
// app sea el dueño de las tablas (FORCE), los queries no llevan WHERE tenant_id
// y aun así cada ámbito ve solo sus filas.
// ──────────────────────────────────────────────────────────────────────────────

func TestAislamientoRLS_DosTenantsNoSeVen(t *testing.T) {
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	dsn := startPostgres(t)
	require.NoError(t, Migrate(dsn))

	pool := newSingleConnPool(t, dsn)
	ctx := context.Background()

	tenantA := uuid.New().String()
	tenantB := uuid.New().String()
	seedTenant(t, pool, tenantA, "farmacia-a")
	seedTenant(t, pool, tenantB, "farmacia-b")

	tp := NewTenantPool(pool)
	repo := NewBranchRepository(tp)

	ctxA := tenantctx.WithTenant(ctx, tenantA)
	ctxB := tenantctx.WithTenant(ctx, tenantB)

	require.NoError(t, repo.Create(ctxA, newBranch(tenantA, "Sucursal Centro")))
	require.NoError(t, repo.Create(ctxB, newBranch(tenantB, "Sucursal Norte")))

	// El SELECT del repo no lleva predicado de tenant; el filtro viene de la
	// política, por debajo del nivel donde se escribe el query.
	listA, err := repo.List(ctxA, 10, 0)
	require.NoError(t, err)
	require.Len(t, listA, 1, "el ámbito de A no debe ver filas de B")
	assert.Equal(t, tenantA, listA[0].TenantID)

	listB, err := repo.List(ctxB, 10, 0)
	require.NoError(t, err)
	require.Len(t, listB, 1, "el ámbito de B no debe ver filas de A")
	assert.Equal(t, tenantB, listB[0].TenantID)

	countA, err := repo.Count(ctxA)
	require.NoError(t, err)
	assert.Equal(t, 1, countA)
}

func TestAislamientoRLS_EscrituraCruzadaRechazada(t *testing.T) {
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	dsn := startPostgres(t)
	require.NoError(t, Migrate(dsn))

	pool := newSingleConnPool(t, dsn)
	tenantA := uuid.New().String()
	tenantB := uuid.New().String()
	seedTenant(t, pool, tenantA, "farmacia-a")
	seedTenant(t, pool, tenantB, "farmacia-b")

	repo := NewBranchRepository(NewTenantPool(pool))
	ctxA := tenantctx.WithTenant(context.Background(), tenantA)

	// Con el ámbito de A no se puede insertar una fila que pertenece a B:
	// el WITH CHECK de la política la rechaza.
	err := repo.Create(ctxA, newBranch(tenantB, "Intrusa"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAislamientoRLS_ReleaseNoDejaResiduo(t *testing.T) {
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	dsn := startPostgres(t)
	require.NoError(t, Migrate(dsn))

	pool := newSingleConnPool(t, dsn)
	ctx := context.Background()

	tenantA := uuid.New().String()
	tenantB := uuid.New().String()
	seedTenant(t, pool, tenantA, "farmacia-a")
	seedTenant(t, pool, tenantB, "farmacia-b")

	repo := NewBranchRepository(NewTenantPool(pool))
	require.NoError(t, repo.Create(tenantctx.WithTenant(ctx, tenantA), newBranch(tenantA, "Sucursal Centro")))
	require.NoError(t, repo.Create(tenantctx.WithTenant(ctx, tenantB), newBranch(tenantB, "Sucursal Norte")))

	// El pool tiene una única conexión física: si el Release no limpiara
	// app.tenant_id, el filtro de la última petición quedaría pegado aquí.
	var residual string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COALESCE(current_setting('app.tenant_id', true), '')`).Scan(&residual))
	assert.Empty(t, residual, "el filtro no debe sobrevivir al Release")

	// Sin ámbito fijado la sesión sigue sin restricción: es la vía de
	// plataforma y de login, que corre sin contexto de tenant.
	var total int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM branches`).Scan(&total))
	assert.Equal(t, 2, total)
}
