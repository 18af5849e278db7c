package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/authz"
	"github.com/jhoicas/Farmacia-api/internal/observability/metrics"
)

// RequireAccess devuelve el gate autoritativo de RBAC para un recurso: si el
// rol del Principal no lo permite según la tabla de authz, la petición muere
// con 403 antes de ejecutar ningún efecto. Debe usarse DESPUÉS de
// AuthMiddleware; una petición sin Principal es 401 (no autenticado), nunca
// 403, y nunca llega a la comparación de roles.
//
// El recurso se referencia por constante, no por string: una etiqueta fuera
// del conjunto cerrado no compila.
func RequireAccess(resource authz.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !authz.CanAccess(principal.Role, resource) {
			metrics.ObserveAuthzDecision(string(principal.Role), string(resource), "deny")
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene acceso a '" + string(resource) + "'"})
		}
		metrics.ObserveAuthzDecision(string(principal.Role), string(resource), "allow")
		return c.Next()
	}
}

// RequirePlatformAdmin gate estrecho para operaciones cross-tenant de
// plataforma: exige PLATFORM_ADMIN exacto, al margen de la jerarquía general.
func RequirePlatformAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !authz.PlatformOnly(principal.Role) {
			metrics.ObserveAuthzDecision(string(principal.Role), "platform", "deny")
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación exclusiva de plataforma"})
		}
		metrics.ObserveAuthzDecision(string(principal.Role), "platform", "allow")
		return c.Next()
	}
}
