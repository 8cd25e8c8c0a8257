package usecase

import (
	"context"
	"time"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// RegistroUseCase lecturas y ediciones de existencias (producto en contenedor).
// Las cantidades no se editan aquí: todo cambio de cantidad es un movimiento.
// La clasificación de vencimiento siempre se recalcula en vivo al responder.
type RegistroUseCase struct {
	registroRepo   repository.ContenedorProductoRepository
	contenedorRepo repository.ContenedorRepository
	umbralDias     int
}

// NewRegistroUseCase construye el caso de uso.
func NewRegistroUseCase(
	registroRepo repository.ContenedorProductoRepository,
	contenedorRepo repository.ContenedorRepository,
	umbralDias int,
) *RegistroUseCase {
	return &RegistroUseCase{
		registroRepo:   registroRepo,
		contenedorRepo: contenedorRepo,
		umbralDias:     umbralDias,
	}
}

// ListByContenedor lista las existencias de un contenedor, cada una con su
// clasificación recalculada a partir de "hoy".
func (uc *RegistroUseCase) ListByContenedor(ctx context.Context, contenedorID string) (*dto.RegistroListResponse, error) {
	c, err := uc.contenedorRepo.GetByID(ctx, contenedorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	registros, err := uc.registroRepo.ListByContenedor(ctx, contenedorID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.RegistroResponse, 0, len(registros))
	for _, r := range registros {
		items = append(items, toRegistroResponse(r, c.EsCongelador(), now, uc.umbralDias))
	}
	return &dto.RegistroListResponse{ContenedorID: contenedorID, Items: items}, nil
}

// GetByID obtiene una existencia con clasificación en vivo.
func (uc *RegistroUseCase) GetByID(ctx context.Context, id string) (*dto.RegistroResponse, error) {
	r, err := uc.registroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	c, err := uc.contenedorRepo.GetByID(ctx, r.ContenedorID)
	if err != nil {
		return nil, err
	}
	congelado := c != nil && c.EsCongelador()
	out := toRegistroResponse(r, congelado, time.Now(), uc.umbralDias)
	return &out, nil
}

// Update edita los metadatos de la existencia (precio, fecha, empaquetado).
// Sin token de concurrencia: última escritura gana.
func (uc *RegistroUseCase) Update(ctx context.Context, id string, in dto.UpdateRegistroRequest) (*dto.RegistroResponse, error) {
	r, err := uc.registroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	if in.Unidad != nil {
		r.Unidad = *in.Unidad
	}
	if in.PrecioRealUnidad != nil {
		if in.PrecioRealUnidad.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		r.PrecioRealUnidad = *in.PrecioRealUnidad
	}
	if in.FechaVencimiento != nil {
		r.FechaVencimiento = in.FechaVencimiento
	}
	if in.Empaquetado != nil {
		r.Empaquetado = *in.Empaquetado
	}
	if in.NumEmpaques != nil {
		r.NumEmpaques = in.NumEmpaques
	}
	r.UpdatedAt = time.Now()
	if err := uc.registroRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete oculta una existencia (soft delete).
func (uc *RegistroUseCase) Delete(ctx context.Context, id string) error {
	r, err := uc.registroRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.registroRepo.SoftDelete(ctx, id)
}

func toRegistroResponse(r *entity.ContenedorProducto, congelado bool, ref time.Time, umbral int) dto.RegistroResponse {
	cl := inventory.Clasificar(r.FechaVencimiento, ref, congelado, umbral)
	return dto.RegistroResponse{
		ID:               r.ID,
		ContenedorID:     r.ContenedorID,
		ProductoID:       r.ProductoID,
		Cantidad:         r.Cantidad,
		Unidad:           r.Unidad,
		PrecioRealUnidad: r.PrecioRealUnidad,
		FechaVencimiento: r.FechaVencimiento,
		Empaquetado:      r.Empaquetado,
		NumEmpaques:      r.NumEmpaques,
		Estado:           cl.Estado,
		DiasParaVencer:   cl.DiasParaVencer,
		UpdatedAt:        r.UpdatedAt,
	}
}
