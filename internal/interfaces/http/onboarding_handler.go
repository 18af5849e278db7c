package http

import (
	"github.com/gofiber/fiber/v2"
	apponboarding "github.com/jhoicas/Farmacia-api/internal/application/onboarding"
	"github.com/jhoicas/Farmacia-api/internal/observability/metrics"
)

// OnboardingHandler sirve el estado de configuración del tenant.
type OnboardingHandler struct {
	uc *apponboarding.StatusUseCase
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(uc *apponboarding.StatusUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// Status godoc
// @Summary      Estado de onboarding del tenant
// @Description  Derivado en vivo de los conteos del tenant; nunca se persiste.
// @Tags         onboarding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OnboardingStatusResponse
// @Router       /api/onboarding/status [get]
func (h *OnboardingHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	metrics.ObserveOnboardingStep(out.CurrentStep)
	return c.JSON(out)
}
