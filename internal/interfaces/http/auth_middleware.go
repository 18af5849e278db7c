package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/authz"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// Local key para el Principal autenticado en Fiber.
const localPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el Principal en c.Locals.
// Autenticación solamente: la autorización (RBAC) y el ámbito de tenant vienen
// en middlewares posteriores y nunca se evalúan sin pasar primero por aquí.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin claim de rol"})
		}
		// Rol no reconocido se normaliza a mínimo privilegio, no se rechaza:
		// el RBAC decidirá (solo dashboard).
		principal := authz.Principal{
			UserID:   claims.UserID,
			TenantID: claims.TenantID,
			Role:     authz.ParseRole(claims.Role),
			Active:   true,
		}
		c.Locals(localPrincipal, principal)
		return c.Next()
	}
}

// GetPrincipal devuelve el Principal autenticado (después de AuthMiddleware).
// ok=false significa petición sin autenticar.
func GetPrincipal(c *fiber.Ctx) (authz.Principal, bool) {
	v := c.Locals(localPrincipal)
	if v == nil {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}
