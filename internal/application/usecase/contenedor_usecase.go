package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// ContenedorUseCase casos de uso CRUD para contenedores.
type ContenedorUseCase struct {
	repo         repository.ContenedorRepository
	registroRepo repository.ContenedorProductoRepository
}

// NewContenedorUseCase construye el caso de uso.
func NewContenedorUseCase(repo repository.ContenedorRepository, registroRepo repository.ContenedorProductoRepository) *ContenedorUseCase {
	return &ContenedorUseCase{repo: repo, registroRepo: registroRepo}
}

// Create crea un nuevo contenedor. La capacidad nunca puede ser negativa;
// cero significa sin capacidad configurada.
func (uc *ContenedorUseCase) Create(ctx context.Context, in dto.CreateContenedorRequest) (*dto.ContenedorResponse, error) {
	if !entity.TipoContenedorValido(in.Tipo) || in.Capacidad.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Contenedor{
		ID:                  uuid.New().String(),
		Nombre:              in.Nombre,
		Tipo:                in.Tipo,
		Capacidad:           in.Capacidad,
		UnidadCapacidad:     in.UnidadCapacidad,
		TemperaturaObjetivo: in.TemperaturaObjetivo,
		HumedadObjetivo:     in.HumedadObjetivo,
		Estado:              entity.ContenedorActivo,
		Visible:             true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContenedorResponse(c), nil
}

// GetByID obtiene un contenedor por ID.
func (uc *ContenedorUseCase) GetByID(ctx context.Context, id string) (*dto.ContenedorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toContenedorResponse(c), nil
}

// Update actualiza parcialmente un contenedor.
func (uc *ContenedorUseCase) Update(ctx context.Context, id string, in dto.UpdateContenedorRequest) (*dto.ContenedorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		if !entity.TipoContenedorValido(*in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		c.Tipo = *in.Tipo
	}
	if in.Capacidad != nil {
		if in.Capacidad.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		c.Capacidad = *in.Capacidad
	}
	if in.UnidadCapacidad != nil {
		c.UnidadCapacidad = *in.UnidadCapacidad
	}
	if in.TemperaturaObjetivo != nil {
		c.TemperaturaObjetivo = in.TemperaturaObjetivo
	}
	if in.HumedadObjetivo != nil {
		c.HumedadObjetivo = in.HumedadObjetivo
	}
	if in.Estado != nil {
		if !entity.EstadoContenedorValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		c.Estado = *in.Estado
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toContenedorResponse(c), nil
}

// List lista contenedores con paginación.
func (uc *ContenedorUseCase) List(ctx context.Context, limit, offset int) (*dto.ContenedorListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContenedorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContenedorResponse(c))
	}
	return &dto.ContenedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete oculta un contenedor (soft delete). Falla con ErrHasDependents si
// todavía tiene existencias con cantidad distinta de cero; nunca borra en cascada.
func (uc *ContenedorUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	n, err := uc.registroRepo.CountByContenedor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.SoftDelete(ctx, id)
}

func toContenedorResponse(c *entity.Contenedor) *dto.ContenedorResponse {
	if c == nil {
		return nil
	}
	return &dto.ContenedorResponse{
		ID:                  c.ID,
		Nombre:              c.Nombre,
		Tipo:                c.Tipo,
		Capacidad:           c.Capacidad,
		UnidadCapacidad:     c.UnidadCapacidad,
		TemperaturaObjetivo: c.TemperaturaObjetivo,
		HumedadObjetivo:     c.HumedadObjetivo,
		Estado:              c.Estado,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
