package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo del restaurante (insumo de cocina).
// NombreNormalizado se mantiene en minúsculas y sin tildes para el buscador.
type Producto struct {
	ID                string
	Nombre            string
	NombreNormalizado string
	Categoria         string // pescado, marisco, verdura, abarrote, bebida...
	UnidadMedida      string // kg, l, unidad
	PrecioRealUnidad  decimal.Decimal // precio_real_unidad: costo unitario de referencia
	Perecedero        bool   // si es true, las existencias deben llevar fecha de vencimiento
	Descripcion       string
	Visible           bool // soft delete
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
