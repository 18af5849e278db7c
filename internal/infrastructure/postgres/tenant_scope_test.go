package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

// La validación del tenant ocurre antes de tocar el pool: estos casos de
// fallo cerrado no necesitan una base de datos.

func TestAcquire_SinTenantEnContexto_FallaCerrado(t *testing.T) {
	p := NewTenantPool(nil)
	conn, err := p.Acquire(context.Background())
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)
}

func TestAcquire_TenantMalformado_FallaCerrado(t *testing.T) {
	p := NewTenantPool(nil)
	ctx := tenantctx.WithTenant(context.Background(), "no-soy-un-uuid")
	conn, err := p.Acquire(ctx)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved,
		"un identificador malformado nunca degrada a una conexión sin filtro")
}

// Release sobre una conexión ya liberada es un no-op, no un panic.
func TestRelease_DobleLlamada(t *testing.T) {
	c := &TenantConn{}
	c.Release()
	c.Release()
}
