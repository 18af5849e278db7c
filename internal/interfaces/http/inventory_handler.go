package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de existencias (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// SetLevel godoc
// @Summary      Fijar existencias de un producto en una sucursal
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetInventoryRequest  true  "Existencias"
// @Success      200   {object}  dto.InventoryLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/levels [put]
func (h *InventoryHandler) SetLevel(c *fiber.Ctx) error {
	var in dto.SetInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y product_id son requeridos"})
	}
	if in.Quantity < 0 || in.ReorderLevel < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity y reorder_level no pueden ser negativos"})
	}
	out, err := h.uc.SetLevel(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByBranch godoc
// @Summary      Listar existencias de una sucursal
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branchId  path   string  true   "ID de la sucursal"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.InventoryListResponse
// @Router       /api/inventory/branches/{branchId} [get]
func (h *InventoryHandler) ListByBranch(c *fiber.Ctx) error {
	branchID := c.Params("branchId")
	if branchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "branchId es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListByBranch(c.UserContext(), branchID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
