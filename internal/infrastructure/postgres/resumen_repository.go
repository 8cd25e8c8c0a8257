package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

var _ repository.ResumenRepository = (*ResumenRepo)(nil)

// ResumenRepo consultas read-only para el dashboard (join existencias+productos).
type ResumenRepo struct {
	q Querier
}

// NewResumenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResumenRepository(q Querier) *ResumenRepo {
	return &ResumenRepo{q: q}
}

// ListRegistrosVisibles devuelve todas las existencias visibles con el nombre
// del producto, para que el dashboard arme los resúmenes sin N+1.
func (r *ResumenRepo) ListRegistrosVisibles(ctx context.Context) ([]repository.RegistroResumen, error) {
	query := `
		SELECT cp.id AS registro_id,
		       cp.contenedor_id,
		       cp.producto_id,
		       p.nombre AS producto_nombre,
		       cp.cantidad,
		       cp.precio_real_unidad,
		       cp.fecha_vencimiento
		FROM contenedor_productos cp
		JOIN productos p ON p.id = cp.producto_id
		WHERE cp.visible = true AND p.visible = true
		ORDER BY cp.contenedor_id, p.nombre`

	var registros []repository.RegistroResumen
	if err := pgxscan.Select(ctx, r.q, &registros, query); err != nil {
		return nil, fmt.Errorf("list registros resumen: %w", err)
	}
	return registros, nil
}
