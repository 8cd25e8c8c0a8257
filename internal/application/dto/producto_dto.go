package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto del catálogo.
type CreateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Categoria        string          `json:"categoria" validate:"omitempty,max=100"`
	UnidadMedida     string          `json:"unidad_medida" validate:"required,max=20"`
	PrecioRealUnidad decimal.Decimal `json:"precio_real_unidad"`
	Perecedero       bool            `json:"perecedero"`
	Descripcion      string          `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdateProductoRequest entrada parcial para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Categoria        *string          `json:"categoria" validate:"omitempty,max=100"`
	UnidadMedida     *string          `json:"unidad_medida" validate:"omitempty,max=20"`
	PrecioRealUnidad *decimal.Decimal `json:"precio_real_unidad"`
	Perecedero       *bool            `json:"perecedero"`
	Descripcion      *string          `json:"descripcion" validate:"omitempty,max=500"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	UnidadMedida     string          `json:"unidad_medida"`
	PrecioRealUnidad decimal.Decimal `json:"precio_real_unidad"`
	Perecedero       bool            `json:"perecedero"`
	Descripcion      string          `json:"descripcion"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
