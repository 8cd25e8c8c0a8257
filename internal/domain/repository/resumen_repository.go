package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RegistroResumen es la fila plana (existencia + nombre de producto) que
// consume el dashboard; se lee con un join para no ir producto por producto.
type RegistroResumen struct {
	RegistroID       string          `db:"registro_id"`
	ContenedorID     string          `db:"contenedor_id"`
	ProductoID       string          `db:"producto_id"`
	ProductoNombre   string          `db:"producto_nombre"`
	Cantidad         decimal.Decimal `db:"cantidad"`
	PrecioRealUnidad decimal.Decimal `db:"precio_real_unidad"`
	FechaVencimiento *time.Time      `db:"fecha_vencimiento"`
}

// ResumenRepository puerto read-only para las consultas del dashboard.
type ResumenRepository interface {
	ListRegistrosVisibles(ctx context.Context) ([]RegistroResumen, error)
}
