package repository

import (
	"context"
	"time"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// MovimientoFilter filtros opcionales del listado de movimientos.
// Los campos vacíos / nil no filtran.
type MovimientoFilter struct {
	ProductoID   string
	ContenedorID string
	Tipo         string
	Desde        *time.Time
	Hasta        *time.Time
	Limit        int
	Offset       int
}

// MovimientoRepository define el puerto de persistencia para movimientos.
// Los movimientos son hechos inmutables: solo Create y lecturas.
// ListKardex devuelve los movimientos de un (producto, contenedor) en orden
// no decreciente de fecha, con empates resueltos por orden de inserción.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	GetByID(ctx context.Context, id string) (*entity.Movimiento, error)
	List(ctx context.Context, f MovimientoFilter) ([]*entity.Movimiento, error)
	ListKardex(ctx context.Context, productoID, contenedorID string) ([]*entity.Movimiento, error)
}
