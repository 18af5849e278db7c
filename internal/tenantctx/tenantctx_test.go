package tenantctx_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

func TestWithTenant_RoundTrip(t *testing.T) {
	ctx := tenantctx.WithTenant(context.Background(), "tenant-a")
	id, ok := tenantctx.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "tenant-a", id)
}

// Un contexto sin tenant significa operación de plataforma: ok=false, nunca
// un valor residual.
func TestFromContext_SinTenant(t *testing.T) {
	id, ok := tenantctx.FromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

// Repetir la llamada con el mismo id es un no-op (mismo contexto).
func TestWithTenant_IdempotenteConMismoID(t *testing.T) {
	ctx := tenantctx.WithTenant(context.Background(), "tenant-a")
	again := tenantctx.WithTenant(ctx, "tenant-a")
	assert.Equal(t, ctx, again)
}

// Un id distinto deriva un contexto nuevo sin tocar el padre.
func TestWithTenant_DerivacionNoMutaPadre(t *testing.T) {
	parent := tenantctx.WithTenant(context.Background(), "tenant-a")
	child := tenantctx.WithTenant(parent, "tenant-b")

	idChild, _ := tenantctx.FromContext(child)
	idParent, _ := tenantctx.FromContext(parent)
	assert.Equal(t, "tenant-b", idChild)
	assert.Equal(t, "tenant-a", idParent, "el contexto padre no debe cambiar")
}

// Peticiones concurrentes jamás observan el tenant ajeno: cada goroutine
// deriva su propio contexto desde la misma raíz y lee su propio valor.
func TestWithTenant_SinFugaEntreGoroutines(t *testing.T) {
	root := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			want := fmt.Sprintf("tenant-%03d", n)
			ctx := tenantctx.WithTenant(root, want)
			for j := 0; j < 50; j++ {
				got, ok := tenantctx.FromContext(ctx)
				if !ok || got != want {
					t.Errorf("goroutine %d leyó %q (ok=%v), esperaba %q", n, got, ok, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	// La raíz compartida sigue sin tenant.
	_, ok := tenantctx.FromContext(root)
	assert.False(t, ok, "la raíz compartida no debe quedar contaminada")
}

func TestAuditor_CurrentTenant(t *testing.T) {
	var auditor tenantctx.Auditor

	ctx := tenantctx.WithTenant(context.Background(), "tenant-a")
	id, ok := auditor.CurrentTenant(ctx)
	require.True(t, ok)
	assert.Equal(t, "tenant-a", id)

	_, ok = auditor.CurrentTenant(context.Background())
	assert.False(t, ok, "sin ámbito de tenant no hay autor que estampar")
}
