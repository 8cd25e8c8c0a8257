package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContenedorRequest entrada para crear un contenedor.
// Capacidad es opcional (techo blando); 0 = sin capacidad configurada.
type CreateContenedorRequest struct {
	Nombre              string           `json:"nombre" validate:"required,min=1,max=200"`
	Tipo                string           `json:"tipo" validate:"required,oneof=congelador refrigerador almacen_seco almacen_humedo"`
	Capacidad           decimal.Decimal  `json:"capacidad"`
	UnidadCapacidad     string           `json:"unidad_capacidad" validate:"omitempty,max=20"`
	TemperaturaObjetivo *decimal.Decimal `json:"temperatura_objetivo"`
	HumedadObjetivo     *decimal.Decimal `json:"humedad_objetivo"`
}

// UpdateContenedorRequest entrada parcial para actualizar un contenedor.
type UpdateContenedorRequest struct {
	Nombre              *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo                *string          `json:"tipo" validate:"omitempty,oneof=congelador refrigerador almacen_seco almacen_humedo"`
	Capacidad           *decimal.Decimal `json:"capacidad"`
	UnidadCapacidad     *string          `json:"unidad_capacidad" validate:"omitempty,max=20"`
	TemperaturaObjetivo *decimal.Decimal `json:"temperatura_objetivo"`
	HumedadObjetivo     *decimal.Decimal `json:"humedad_objetivo"`
	Estado              *string          `json:"estado" validate:"omitempty,oneof=activo mantenimiento inactivo"`
}

// ContenedorResponse salida de un contenedor.
type ContenedorResponse struct {
	ID                  string           `json:"id"`
	Nombre              string           `json:"nombre"`
	Tipo                string           `json:"tipo"`
	Capacidad           decimal.Decimal  `json:"capacidad"`
	UnidadCapacidad     string           `json:"unidad_capacidad"`
	TemperaturaObjetivo *decimal.Decimal `json:"temperatura_objetivo,omitempty"`
	HumedadObjetivo     *decimal.Decimal `json:"humedad_objetivo,omitempty"`
	Estado              string           `json:"estado"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ContenedorListResponse lista paginada de contenedores.
type ContenedorListResponse struct {
	Items []ContenedorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
