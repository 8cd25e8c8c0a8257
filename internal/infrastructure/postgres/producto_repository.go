package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, nombre_normalizado, categoria, unidad_medida,
	precio_real_unidad, perecedero, descripcion, visible, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.NombreNormalizado, p.Categoria, p.UnidadMedida,
		p.PrecioRealUnidad, p.Perecedero, p.Descripcion, p.Visible,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto visible por ID.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos WHERE id = $1 AND visible = true`
	p, err := scanProducto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, nombre_normalizado = $3, categoria = $4, unidad_medida = $5,
		    precio_real_unidad = $6, perecedero = $7, descripcion = $8, updated_at = $9
		WHERE id = $1 AND visible = true`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.NombreNormalizado, p.Categoria, p.UnidadMedida,
		p.PrecioRealUnidad, p.Perecedero, p.Descripcion, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List lista productos visibles; busqueda filtra por nombre normalizado (LIKE).
func (r *ProductoRepo) List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos WHERE visible = true`
	args := []any{}
	pos := 1
	if busqueda != "" {
		query += fmt.Sprintf(" AND nombre_normalizado LIKE $%d", pos)
		args = append(args, "%"+busqueda+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SoftDelete oculta el producto (visible=false).
func (r *ProductoRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE productos SET visible = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.NombreNormalizado, &p.Categoria, &p.UnidadMedida,
		&p.PrecioRealUnidad, &p.Perecedero, &p.Descripcion, &p.Visible,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
