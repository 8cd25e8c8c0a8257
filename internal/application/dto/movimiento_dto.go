package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovimientoRequest body para POST /api/inventario/movimientos.
// Para entrada/salida la cantidad debe ser positiva (el signo lo da el tipo);
// para ajuste la cantidad es un delta con signo y no puede ser cero.
type RegisterMovimientoRequest struct {
	ProductoID       string           `json:"producto_id" validate:"required,uuid4"`
	ContenedorID     string           `json:"contenedor_id" validate:"required,uuid4"`
	Tipo             string           `json:"tipo_movimiento" validate:"required,oneof=entrada salida ajuste"`
	Cantidad         decimal.Decimal  `json:"cantidad"`
	PrecioUnidad     *decimal.Decimal `json:"precio_unidad"`
	Motivo           string           `json:"motivo" validate:"omitempty,max=100"`
	Observaciones    string           `json:"observaciones" validate:"omitempty,max=500"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento"` // solo entradas: fecha del lote que ingresa
	Unidad           string           `json:"unidad" validate:"omitempty,max=20"`
	Empaquetado      string           `json:"empaquetado" validate:"omitempty,max=200"`
	NumEmpaques      *int             `json:"num_empaques" validate:"omitempty,min=0"`
}

// MovimientoResponse salida de un movimiento registrado.
type MovimientoResponse struct {
	ID            string           `json:"id"`
	ProductoID    string           `json:"producto_id"`
	ContenedorID  string           `json:"contenedor_id"`
	Tipo          string           `json:"tipo_movimiento"`
	Cantidad      decimal.Decimal  `json:"cantidad"`
	PrecioUnidad  *decimal.Decimal `json:"precio_unidad,omitempty"`
	Motivo        string           `json:"motivo,omitempty"`
	Observaciones string           `json:"observaciones,omitempty"`
	StockAnterior decimal.Decimal  `json:"stock_anterior"`
	StockNuevo    decimal.Decimal  `json:"stock_nuevo"`
	Fecha         time.Time        `json:"fecha"`
	CreatedBy     string           `json:"created_by,omitempty"`
}

// MovimientoListResponse listado filtrado de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// KardexItemResponse una fila del kardex: movimiento + saldo corrido recalculado.
type KardexItemResponse struct {
	MovimientoResponse
	Delta         decimal.Decimal `json:"delta"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	SaldoNegativo bool            `json:"saldo_negativo,omitempty"`
}

// KardexResponse el kardex completo de un (producto, contenedor).
type KardexResponse struct {
	ProductoID   string               `json:"producto_id"`
	ContenedorID string               `json:"contenedor_id"`
	SaldoFinal   decimal.Decimal      `json:"saldo_final"`
	Items        []KardexItemResponse `json:"items"`
}

// ReconciliacionResponse resultado del pase de reconciliación de estados.
type ReconciliacionResponse struct {
	Revisados    int `json:"revisados"`
	Actualizados int `json:"actualizados"`
	Fallidos     int `json:"fallidos"`
}
