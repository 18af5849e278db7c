package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/authz"
	"github.com/jhoicas/Farmacia-api/internal/observability/metrics"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

// TenantScopeMiddleware es el interceptor de aislamiento: resuelve el tenant
// del Principal una sola vez al inicio de la petición y lo fija en el contexto
// de usuario de Fiber. A partir de aquí toda consulta que pase por TenantPool
// queda restringida a las filas del tenant; el contexto muere con la petición
// en todas las rutas de salida, así que no hay valor que limpiar a mano ni
// fuga posible hacia otra petición.
//
// Debe usarse DESPUÉS de AuthMiddleware. Reglas:
//   - PLATFORM_ADMIN no lleva tenant: corre sin ámbito (lecturas cross-tenant
//     deliberadas, solo en la superficie de plataforma).
//   - Tenant vacío o malformado en un rol de tenant: fallo cerrado, 401.
//     Nunca se degrada a acceso sin filtro.
func TenantScopeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal no encontrado en la petición"})
		}
		if principal.Role == authz.RolePlatformAdmin {
			metrics.ObserveScopeResolution("platform")
			return c.Next()
		}
		if principal.TenantID == "" {
			metrics.ObserveScopeResolution("unresolved")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TENANT_UNRESOLVED", Message: "token sin tenant"})
		}
		if _, err := uuid.Parse(principal.TenantID); err != nil {
			metrics.ObserveScopeResolution("unresolved")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TENANT_UNRESOLVED", Message: "identificador de tenant malformado"})
		}

		c.SetUserContext(tenantctx.WithTenant(c.UserContext(), principal.TenantID))
		metrics.ObserveScopeResolution("scoped")
		return c.Next()
	}
}
