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

var _ repository.ContenedorRepository = (*ContenedorRepo)(nil)

// ContenedorRepo implementación del puerto ContenedorRepository sobre PostgreSQL.
type ContenedorRepo struct {
	q Querier
}

// NewContenedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContenedorRepository(q Querier) *ContenedorRepo {
	return &ContenedorRepo{q: q}
}

const contenedorColumns = `id, nombre, tipo, capacidad, unidad_capacidad,
	temperatura_objetivo, humedad_objetivo, estado, visible, created_at, updated_at`

// Create persiste un nuevo contenedor.
func (r *ContenedorRepo) Create(ctx context.Context, c *entity.Contenedor) error {
	query := `
		INSERT INTO contenedores (` + contenedorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Tipo, c.Capacidad, c.UnidadCapacidad,
		c.TemperaturaObjetivo, c.HumedadObjetivo, c.Estado, c.Visible,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contenedor: %w", err)
	}
	return nil
}

// GetByID obtiene un contenedor visible por ID.
func (r *ContenedorRepo) GetByID(ctx context.Context, id string) (*entity.Contenedor, error) {
	query := `
		SELECT ` + contenedorColumns + `
		FROM contenedores WHERE id = $1 AND visible = true`
	c, err := scanContenedor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contenedor: %w", err)
	}
	return c, nil
}

// Update actualiza un contenedor existente.
func (r *ContenedorRepo) Update(ctx context.Context, c *entity.Contenedor) error {
	query := `
		UPDATE contenedores
		SET nombre = $2, tipo = $3, capacidad = $4, unidad_capacidad = $5,
		    temperatura_objetivo = $6, humedad_objetivo = $7, estado = $8, updated_at = $9
		WHERE id = $1 AND visible = true`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Tipo, c.Capacidad, c.UnidadCapacidad,
		c.TemperaturaObjetivo, c.HumedadObjetivo, c.Estado, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contenedor: %w", err)
	}
	return nil
}

// List lista contenedores visibles con paginación.
func (r *ContenedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Contenedor, error) {
	query := `
		SELECT ` + contenedorColumns + `
		FROM contenedores WHERE visible = true
		ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contenedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contenedor
	for rows.Next() {
		c, err := scanContenedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contenedor: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SoftDelete oculta el contenedor (visible=false). Nunca borra en cascada.
func (r *ContenedorRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE contenedores SET visible = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete contenedor: %w", err)
	}
	return nil
}

func scanContenedor(row pgx.Row) (*entity.Contenedor, error) {
	var c entity.Contenedor
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Tipo, &c.Capacidad, &c.UnidadCapacidad,
		&c.TemperaturaObjetivo, &c.HumedadObjetivo, &c.Estado, &c.Visible,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
