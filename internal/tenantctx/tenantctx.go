// Package tenantctx transporta el identificador del tenant activo durante una
// petición. Se apoya en context.Context (clave no exportada), nunca en una
// variable compartida: peticiones concurrentes jamás observan el valor ajeno y
// el valor muere con el contexto en todas las rutas de salida (retorno normal,
// error, panic recuperado, cancelación).
//
// El único escritor es el middleware de aislamiento en el punto de entrada de
// la petición; el resto del sistema solo lee.
package tenantctx

import "context"

type tenantKey struct{}

// WithTenant deriva un contexto con el tenant activo. Debe llamarse una sola
// vez por petición, en el punto de entrada; volver a llamar con el mismo id es
// un no-op.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	if current, ok := FromContext(ctx); ok && current == tenantID {
		return ctx
	}
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// FromContext lee el tenant activo. ok=false significa "sin ámbito de tenant"
// (operación de plataforma); nunca hay fuga entre peticiones.
func FromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(tenantKey{})
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Auditor proyección de solo lectura del contexto de tenant, consumida por la
// capa de persistencia para estampar created_by/updated_by en escrituras.
// Existe como tipo propio para que el subsistema de auditoría no dependa de
// nada más que esta superficie.
type Auditor struct{}

// CurrentTenant devuelve el tenant que debe quedar registrado como autor de la
// escritura, o ok=false si la operación corre sin ámbito de tenant.
func (Auditor) CurrentTenant(ctx context.Context) (string, bool) {
	return FromContext(ctx)
}
