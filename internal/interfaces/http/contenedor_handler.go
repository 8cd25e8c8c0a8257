package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/usecase"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
)

// ContenedorHandler maneja las peticiones HTTP para Contenedor (protegido).
type ContenedorHandler struct {
	uc         *usecase.ContenedorUseCase
	registroUC *usecase.RegistroUseCase
}

// NewContenedorHandler construye el handler.
func NewContenedorHandler(uc *usecase.ContenedorUseCase, registroUC *usecase.RegistroUseCase) *ContenedorHandler {
	return &ContenedorHandler{uc: uc, registroUC: registroUC}
}

// Create godoc
// @Summary      Crear contenedor
// @Tags         contenedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContenedorRequest  true  "Datos del contenedor"
// @Success      201   {object}  dto.ContenedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contenedores [post]
func (h *ContenedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContenedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contenedor por ID
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      200  {object}  dto.ContenedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [get]
func (h *ContenedorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contenedores
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ContenedorListResponse
// @Router       /api/contenedores [get]
func (h *ContenedorHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contenedor
// @Tags         contenedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del contenedor"
// @Param        body  body  dto.UpdateContenedorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ContenedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [put]
func (h *ContenedorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateContenedorRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contenedor (soft delete)
// @Description  Falla con 409 si el contenedor todavía tiene productos con existencias.
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [delete]
func (h *ContenedorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		if err == domain.ErrHasDependents {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_DEPENDENTS", Message: "el contenedor tiene productos asociados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProductos godoc
// @Summary      Listar existencias de un contenedor
// @Description  Cada existencia incluye su clasificación de vencimiento recalculada en vivo.
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      200  {object}  dto.RegistroListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id}/productos [get]
func (h *ContenedorHandler) ListProductos(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.registroUC.ListByContenedor(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
