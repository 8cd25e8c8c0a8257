package repository

import (
	"context"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// ContenedorRepository define el puerto de persistencia para Contenedor (DIP).
// Delete es un soft delete (visible=false); nunca borra en cascada.
type ContenedorRepository interface {
	Create(ctx context.Context, c *entity.Contenedor) error
	GetByID(ctx context.Context, id string) (*entity.Contenedor, error)
	Update(ctx context.Context, c *entity.Contenedor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Contenedor, error)
	SoftDelete(ctx context.Context, id string) error
}
