package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateRegistroRequest entrada parcial para editar una existencia
// (producto dentro de contenedor). La cantidad NO se edita por aquí: los
// cambios de cantidad son movimientos.
type UpdateRegistroRequest struct {
	Unidad           *string          `json:"unidad" validate:"omitempty,max=20"`
	PrecioRealUnidad *decimal.Decimal `json:"precio_real_unidad"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento"`
	Empaquetado      *string          `json:"empaquetado" validate:"omitempty,max=200"`
	NumEmpaques      *int             `json:"num_empaques" validate:"omitempty,min=0"`
}

// RegistroResponse salida de una existencia, enriquecida con la clasificación
// de vencimiento calculada en vivo (estado_calculado es solo informativo).
type RegistroResponse struct {
	ID               string          `json:"id"`
	ContenedorID     string          `json:"contenedor_id"`
	ProductoID       string          `json:"producto_id"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	PrecioRealUnidad decimal.Decimal `json:"precio_real_unidad"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
	Empaquetado      string          `json:"empaquetado,omitempty"`
	NumEmpaques      *int            `json:"num_empaques,omitempty"`
	Estado           string          `json:"estado"`
	DiasParaVencer   *int            `json:"dias_para_vencer,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// RegistroListResponse existencias de un contenedor.
type RegistroListResponse struct {
	ContenedorID string             `json:"contenedor_id"`
	Items        []RegistroResponse `json:"items"`
}
