package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
// El listado filtrado se arma con squirrel por la combinatoria de filtros.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoColumns = `id, producto_id, contenedor_id, tipo_movimiento, cantidad,
	precio_unidad, motivo, observaciones, stock_anterior, stock_nuevo,
	fecha, created_at, created_by`

var movimientoCols = []string{
	"id", "producto_id", "contenedor_id", "tipo_movimiento", "cantidad",
	"precio_unidad", "motivo", "observaciones", "stock_anterior", "stock_nuevo",
	"fecha", "created_at", "created_by",
}

// Create persiste un movimiento. Los movimientos nunca se actualizan ni borran.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductoID, m.ContenedorID, m.Tipo, m.Cantidad,
		m.PrecioUnidad, m.Motivo, m.Observaciones, m.StockAnterior, m.StockNuevo,
		m.Fecha, m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos WHERE id = $1`
	m, err := scanMovimiento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos según el filtro, más recientes primero.
func (r *MovimientoRepo) List(ctx context.Context, f repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	b := sq.Select(movimientoCols...).
		From("movimientos").
		PlaceholderFormat(sq.Dollar)

	if f.ProductoID != "" {
		b = b.Where(sq.Eq{"producto_id": f.ProductoID})
	}
	if f.ContenedorID != "" {
		b = b.Where(sq.Eq{"contenedor_id": f.ContenedorID})
	}
	if f.Tipo != "" {
		b = b.Where(sq.Eq{"tipo_movimiento": f.Tipo})
	}
	if f.Desde != nil {
		b = b.Where(sq.GtOrEq{"fecha": *f.Desde})
	}
	if f.Hasta != nil {
		b = b.Where(sq.LtOrEq{"fecha": *f.Hasta})
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	b = b.OrderBy("fecha DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movimientos: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

// ListKardex devuelve los movimientos de un (producto, contenedor) en orden
// no decreciente de fecha; los empates se resuelven por orden de inserción
// (created_at, id). El acumulador exige este orden.
func (r *MovimientoRepo) ListKardex(ctx context.Context, productoID, contenedorID string) ([]*entity.Movimiento, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos
		WHERE producto_id = $1 AND contenedor_id = $2
		ORDER BY fecha, created_at, id`
	rows, err := r.q.Query(ctx, query, productoID, contenedorID)
	if err != nil {
		return nil, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var createdBy *string
	err := row.Scan(
		&m.ID, &m.ProductoID, &m.ContenedorID, &m.Tipo, &m.Cantidad,
		&m.PrecioUnidad, &m.Motivo, &m.Observaciones, &m.StockAnterior, &m.StockNuevo,
		&m.Fecha, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

func collectMovimientos(rows pgx.Rows) ([]*entity.Movimiento, error) {
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
