package repository

import (
	"context"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto.
// busqueda filtra por nombre normalizado (sin tildes, minúsculas).
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Producto, error)
	SoftDelete(ctx context.Context, id string) error
}
