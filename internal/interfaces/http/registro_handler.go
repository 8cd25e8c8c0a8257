package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/usecase"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
)

// RegistroHandler maneja las existencias individuales (producto en contenedor).
// Las cantidades no se tocan por aquí: todo cambio de cantidad es un movimiento.
type RegistroHandler struct {
	uc *usecase.RegistroUseCase
}

// NewRegistroHandler construye el handler.
func NewRegistroHandler(uc *usecase.RegistroUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener existencia por ID
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la existencia"
// @Success      200  {object}  dto.RegistroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [get]
func (h *RegistroHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "existencia no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar metadatos de una existencia
// @Description  Edita precio, fecha de vencimiento, unidad y empaquetado. La cantidad no se edita: usar movimientos.
// @Tags         registros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la existencia"
// @Param        body  body  dto.UpdateRegistroRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RegistroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [put]
func (h *RegistroHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "existencia no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar existencia (soft delete)
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la existencia"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [delete]
func (h *RegistroHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "existencia no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
