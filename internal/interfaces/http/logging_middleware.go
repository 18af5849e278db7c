package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Si la petición corre con ámbito de tenant, el tenant_id va en el evento;
// las rutas de plataforma y las públicas salen sin él.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := log
		if tenantID, ok := tenantctx.FromContext(c.UserContext()); ok {
			l = log.WithTenant(tenantID)
		}
		event := l.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = l.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
