package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

var _ repository.ContenedorProductoRepository = (*ContenedorProductoRepo)(nil)

// ContenedorProductoRepo implementación sobre PostgreSQL (usable con pool o tx).
type ContenedorProductoRepo struct {
	q Querier
}

// NewContenedorProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContenedorProductoRepository(q Querier) *ContenedorProductoRepo {
	return &ContenedorProductoRepo{q: q}
}

const registroColumns = `id, contenedor_id, producto_id, cantidad, unidad,
	precio_real_unidad, fecha_vencimiento, empaquetado, num_empaques,
	estado_calculado, visible, created_at, updated_at`

// Create persiste una nueva existencia.
func (r *ContenedorProductoRepo) Create(ctx context.Context, cp *entity.ContenedorProducto) error {
	query := `
		INSERT INTO contenedor_productos (` + registroColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		cp.ID, cp.ContenedorID, cp.ProductoID, cp.Cantidad, cp.Unidad,
		cp.PrecioRealUnidad, cp.FechaVencimiento, cp.Empaquetado, cp.NumEmpaques,
		cp.EstadoCalculado, cp.Visible, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contenedor_producto: %w", err)
	}
	return nil
}

// GetByID obtiene una existencia visible por ID.
func (r *ContenedorProductoRepo) GetByID(ctx context.Context, id string) (*entity.ContenedorProducto, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM contenedor_productos WHERE id = $1 AND visible = true`
	cp, err := scanRegistro(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contenedor_producto: %w", err)
	}
	return cp, nil
}

// Get obtiene la existencia de un producto en un contenedor.
func (r *ContenedorProductoRepo) Get(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM contenedor_productos
		WHERE contenedor_id = $1 AND producto_id = $2 AND visible = true`
	cp, err := scanRegistro(r.q.QueryRow(ctx, query, contenedorID, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contenedor_producto: %w", err)
	}
	return cp, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE).
// Si no existe devuelve un registro en cero listo para Upsert.
func (r *ContenedorProductoRepo) GetForUpdate(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM contenedor_productos
		WHERE contenedor_id = $1 AND producto_id = $2 AND visible = true
		FOR UPDATE`
	cp, err := scanRegistro(r.q.QueryRow(ctx, query, contenedorID, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ContenedorProducto{
				ContenedorID: contenedorID,
				ProductoID:   productoID,
				Visible:      true,
			}, nil
		}
		return nil, fmt.Errorf("get contenedor_producto for update: %w", err)
	}
	return cp, nil
}

// Upsert inserta o actualiza la existencia (por contenedor y producto).
func (r *ContenedorProductoRepo) Upsert(ctx context.Context, cp *entity.ContenedorProducto) error {
	query := `
		INSERT INTO contenedor_productos (` + registroColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (contenedor_id, producto_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad,
		              unidad = EXCLUDED.unidad,
		              precio_real_unidad = EXCLUDED.precio_real_unidad,
		              fecha_vencimiento = EXCLUDED.fecha_vencimiento,
		              empaquetado = EXCLUDED.empaquetado,
		              num_empaques = EXCLUDED.num_empaques,
		              estado_calculado = EXCLUDED.estado_calculado,
		              visible = EXCLUDED.visible,
		              updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		cp.ID, cp.ContenedorID, cp.ProductoID, cp.Cantidad, cp.Unidad,
		cp.PrecioRealUnidad, cp.FechaVencimiento, cp.Empaquetado, cp.NumEmpaques,
		cp.EstadoCalculado, cp.Visible, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert contenedor_producto: %w", err)
	}
	return nil
}

// Update actualiza una existencia por ID (last-write-wins; sin token de concurrencia).
func (r *ContenedorProductoRepo) Update(ctx context.Context, cp *entity.ContenedorProducto) error {
	query := `
		UPDATE contenedor_productos
		SET cantidad = $2, unidad = $3, precio_real_unidad = $4, fecha_vencimiento = $5,
		    empaquetado = $6, num_empaques = $7, estado_calculado = $8, updated_at = $9
		WHERE id = $1 AND visible = true`
	_, err := r.q.Exec(ctx, query,
		cp.ID, cp.Cantidad, cp.Unidad, cp.PrecioRealUnidad, cp.FechaVencimiento,
		cp.Empaquetado, cp.NumEmpaques, cp.EstadoCalculado, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contenedor_producto: %w", err)
	}
	return nil
}

// ListByContenedor lista las existencias visibles de un contenedor.
func (r *ContenedorProductoRepo) ListByContenedor(ctx context.Context, contenedorID string) ([]*entity.ContenedorProducto, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM contenedor_productos
		WHERE contenedor_id = $1 AND visible = true
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, contenedorID)
	if err != nil {
		return nil, fmt.Errorf("list by contenedor: %w", err)
	}
	defer rows.Close()
	return collectRegistros(rows)
}

// ListVisibles lista todas las existencias visibles (para el pase de reconciliación).
func (r *ContenedorProductoRepo) ListVisibles(ctx context.Context) ([]*entity.ContenedorProducto, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM contenedor_productos WHERE visible = true
		ORDER BY contenedor_id, created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list visibles: %w", err)
	}
	defer rows.Close()
	return collectRegistros(rows)
}

// CountByContenedor cuenta existencias visibles con cantidad distinta de cero.
// Se usa como guard de dependientes antes de eliminar un contenedor.
func (r *ContenedorProductoRepo) CountByContenedor(ctx context.Context, contenedorID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT count(*) FROM contenedor_productos
		WHERE contenedor_id = $1 AND visible = true AND cantidad <> 0`, contenedorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count by contenedor: %w", err)
	}
	return n, nil
}

// SoftDelete oculta la existencia (visible=false).
func (r *ContenedorProductoRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE contenedor_productos SET visible = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete contenedor_producto: %w", err)
	}
	return nil
}

// UpdateEstadoCalculado reescribe solo la etiqueta denormalizada.
func (r *ContenedorProductoRepo) UpdateEstadoCalculado(ctx context.Context, id, estado string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE contenedor_productos SET estado_calculado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado_calculado: %w", err)
	}
	return nil
}

func scanRegistro(row pgx.Row) (*entity.ContenedorProducto, error) {
	var cp entity.ContenedorProducto
	err := row.Scan(
		&cp.ID, &cp.ContenedorID, &cp.ProductoID, &cp.Cantidad, &cp.Unidad,
		&cp.PrecioRealUnidad, &cp.FechaVencimiento, &cp.Empaquetado, &cp.NumEmpaques,
		&cp.EstadoCalculado, &cp.Visible, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func collectRegistros(rows pgx.Rows) ([]*entity.ContenedorProducto, error) {
	var list []*entity.ContenedorProducto
	for rows.Next() {
		cp, err := scanRegistro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contenedor_producto: %w", err)
		}
		list = append(list, cp)
	}
	return list, rows.Err()
}
