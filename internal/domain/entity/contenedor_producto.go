package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContenedorProducto es la existencia actual de un producto dentro de un
// contenedor: la proyección de estado que los movimientos van construyendo.
//
// EstadoCalculado es una etiqueta denormalizada que algunas vistas persisten
// como caché; nunca es fuente de verdad. La clasificación real se recalcula
// en cada lectura con inventory.Clasificar.
type ContenedorProducto struct {
	ID               string
	ContenedorID     string
	ProductoID       string
	Cantidad         decimal.Decimal
	Unidad           string
	PrecioRealUnidad decimal.Decimal
	FechaVencimiento *time.Time // nil = sin fecha; nunca clasifica como vencido
	Empaquetado      string     // descriptor libre: "bolsas de 1kg", "caja x24"
	NumEmpaques      *int       // cantidad de empaques discretos, si aplica
	EstadoCalculado  string     // caché denormalizada del estado de vencimiento
	Visible          bool       // soft delete
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
