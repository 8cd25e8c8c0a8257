package inventory

import (
	"context"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: la fila de existencia y el movimiento se escriben juntos o no
// se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		registroRepo repository.ContenedorProductoRepository,
	) error) error
}
