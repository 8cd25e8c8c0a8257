package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/normalizar"
)

// ProductoUseCase casos de uso CRUD para el catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto; el precio no puede ser negativo.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.PrecioRealUnidad.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		NombreNormalizado: normalizar.Texto(in.Nombre),
		Categoria:         in.Categoria,
		UnidadMedida:      in.UnidadMedida,
		PrecioRealUnidad:  in.PrecioRealUnidad,
		Perecedero:        in.Perecedero,
		Descripcion:       in.Descripcion,
		Visible:           true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// Update actualiza parcialmente un producto.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
		p.NombreNormalizado = normalizar.Texto(*in.Nombre)
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.UnidadMedida != nil {
		p.UnidadMedida = *in.UnidadMedida
	}
	if in.PrecioRealUnidad != nil {
		if in.PrecioRealUnidad.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.PrecioRealUnidad = *in.PrecioRealUnidad
	}
	if in.Perecedero != nil {
		p.Perecedero = *in.Perecedero
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List lista productos; busqueda es insensible a tildes y mayúsculas.
func (uc *ProductoUseCase) List(ctx context.Context, busqueda string, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.List(ctx, normalizar.Texto(busqueda), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete oculta un producto (soft delete).
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Categoria:        p.Categoria,
		UnidadMedida:     p.UnidadMedida,
		PrecioRealUnidad: p.PrecioRealUnidad,
		Perecedero:       p.Perecedero,
		Descripcion:      p.Descripcion,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
