package repository

import (
	"context"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// ContenedorProductoRepository define el puerto para las existencias
// (producto dentro de contenedor). GetForUpdate bloquea la fila
// (SELECT FOR UPDATE) y se usa dentro del motor transaccional de movimientos.
type ContenedorProductoRepository interface {
	Create(ctx context.Context, r *entity.ContenedorProducto) error
	GetByID(ctx context.Context, id string) (*entity.ContenedorProducto, error)
	Get(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error)
	GetForUpdate(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error)
	Upsert(ctx context.Context, r *entity.ContenedorProducto) error
	Update(ctx context.Context, r *entity.ContenedorProducto) error
	ListByContenedor(ctx context.Context, contenedorID string) ([]*entity.ContenedorProducto, error)
	ListVisibles(ctx context.Context) ([]*entity.ContenedorProducto, error)
	CountByContenedor(ctx context.Context, contenedorID string) (int, error)
	SoftDelete(ctx context.Context, id string) error
	// UpdateEstadoCalculado reescribe la etiqueta denormalizada (caché, no fuente de verdad).
	UpdateEstadoCalculado(ctx context.Context, id, estado string) error
}
