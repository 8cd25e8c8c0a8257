package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/analytics"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
)

// DashboardHandler maneja el resumen agregado del inventario (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Resumen del inventario
// @Description  Tarjetas por contenedor (conteos por estado, valor, capacidad) y alertas globales, todo calculado en vivo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
