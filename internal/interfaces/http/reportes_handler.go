package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/reportes"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
)

// ReportesHandler maneja los reportes PDF (protegido).
type ReportesHandler struct {
	kardexUC *reportes.KardexReportUseCase
}

// NewReportesHandler construye el handler.
func NewReportesHandler(kardexUC *reportes.KardexReportUseCase) *ReportesHandler {
	return &ReportesHandler{kardexUC: kardexUC}
}

// KardexPDF godoc
// @Summary      Descargar kardex en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        producto_id    query  string  true  "UUID del producto"
// @Param        contenedor_id  query  string  true  "UUID del contenedor"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/kardex [get]
func (h *ReportesHandler) KardexPDF(c *fiber.Ctx) error {
	productoID := c.Query("producto_id")
	contenedorID := c.Query("contenedor_id")
	if productoID == "" || contenedorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y contenedor_id son requeridos"})
	}
	pdfBytes, err := h.kardexUC.GeneratePDF(c.Context(), productoID, contenedorID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}
