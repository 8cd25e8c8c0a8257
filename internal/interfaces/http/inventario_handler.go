package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	appinv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// InventarioHandler maneja movimientos, kardex y reconciliación (protegido).
type InventarioHandler struct {
	registerUC  *appinv.RegisterMovimientoUseCase
	kardexUC    *appinv.KardexUseCase
	reconcileUC *appinv.ReconcileUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(
	registerUC *appinv.RegisterMovimientoUseCase,
	kardexUC *appinv.KardexUseCase,
	reconcileUC *appinv.ReconcileUseCase,
) *InventarioHandler {
	return &InventarioHandler{
		registerUC:  registerUC,
		kardexUC:    kardexUC,
		reconcileUC: reconcileUC,
	}
}

// RegisterMovimiento godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada/salida con cantidad positiva; ajuste con delta con signo distinto de cero.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovimientoRequest  true  "producto_id, contenedor_id, tipo_movimiento, cantidad"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventarioHandler) RegisterMovimiento(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.registerUC.Register(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovimientos godoc
// @Summary      Listar movimientos
// @Description  Filtros opcionales por producto, contenedor, tipo y rango de fechas (RFC3339).
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id    query  string  false  "UUID del producto"
// @Param        contenedor_id  query  string  false  "UUID del contenedor"
// @Param        tipo           query  string  false  "entrada | salida | ajuste"
// @Param        desde          query  string  false  "Fecha inicial (RFC3339)"
// @Param        hasta          query  string  false  "Fecha final (RFC3339)"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) ListMovimientos(c *fiber.Ctx) error {
	f := repository.MovimientoFilter{
		ProductoID:   c.Query("producto_id"),
		ContenedorID: c.Query("contenedor_id"),
		Tipo:         c.Query("tipo"),
		Limit:        c.QueryInt("limit", 20),
		Offset:       c.QueryInt("offset", 0),
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if s := c.Query("desde"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde debe ser RFC3339"})
		}
		f.Desde = &t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta debe ser RFC3339"})
		}
		f.Hasta = &t
	}
	out, err := h.kardexUC.List(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetKardex godoc
// @Summary      Kardex de un producto en un contenedor
// @Description  Historial cronológico con saldo corrido recalculado desde cero.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id    query  string  true  "UUID del producto"
// @Param        contenedor_id  query  string  true  "UUID del contenedor"
// @Success      200  {object}  dto.KardexResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/kardex [get]
func (h *InventarioHandler) GetKardex(c *fiber.Ctx) error {
	productoID := c.Query("producto_id")
	contenedorID := c.Query("contenedor_id")
	if productoID == "" || contenedorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y contenedor_id son requeridos"})
	}
	out, err := h.kardexUC.GetKardex(c.Context(), productoID, contenedorID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reconciliar godoc
// @Summary      Reconciliar estados de vencimiento
// @Description  Recorre las existencias visibles y reescribe estado_calculado donde quedó desactualizado. Solo admin.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconciliacionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventario/reconciliar [post]
func (h *InventarioHandler) Reconciliar(c *fiber.Ctx) error {
	out, err := h.reconcileUC.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
