package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// KardexUseCase lecturas del historial de movimientos: listado filtrado y
// kardex (saldo corrido) por producto y contenedor.
type KardexUseCase struct {
	movRepo        repository.MovimientoRepository
	productoRepo   repository.ProductoRepository
	contenedorRepo repository.ContenedorRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	contenedorRepo repository.ContenedorRepository,
) *KardexUseCase {
	return &KardexUseCase{
		movRepo:        movRepo,
		productoRepo:   productoRepo,
		contenedorRepo: contenedorRepo,
	}
}

// List lista movimientos según filtros, más recientes primero.
func (uc *KardexUseCase) List(ctx context.Context, f repository.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	movs, err := uc.movRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *ToMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// GetKardex arma el kardex de un (producto, contenedor): movimientos en orden
// cronológico con el saldo corrido recalculado desde cero por el acumulador.
// No se confía en la foto stock_anterior/stock_nuevo persistida.
func (uc *KardexUseCase) GetKardex(ctx context.Context, productoID, contenedorID string) (*dto.KardexResponse, error) {
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	contenedor, err := uc.contenedorRepo.GetByID(ctx, contenedorID)
	if err != nil {
		return nil, err
	}
	if producto == nil || contenedor == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := uc.movRepo.ListKardex(ctx, productoID, contenedorID)
	if err != nil {
		return nil, err
	}

	kardex := dominv.Acumular(movs, decimal.Zero)
	items := make([]dto.KardexItemResponse, 0, len(kardex))
	saldoFinal := decimal.Zero
	for _, e := range kardex {
		items = append(items, dto.KardexItemResponse{
			MovimientoResponse: dto.MovimientoResponse{
				ID:            e.Movimiento.ID,
				ProductoID:    e.Movimiento.ProductoID,
				ContenedorID:  e.Movimiento.ContenedorID,
				Tipo:          e.Movimiento.Tipo,
				Cantidad:      e.Movimiento.Cantidad,
				PrecioUnidad:  e.Movimiento.PrecioUnidad,
				Motivo:        e.Movimiento.Motivo,
				Observaciones: e.Movimiento.Observaciones,
				StockAnterior: e.StockAnterior,
				StockNuevo:    e.StockNuevo,
				Fecha:         e.Movimiento.Fecha,
				CreatedBy:     e.Movimiento.CreatedBy,
			},
			Delta:         e.Delta,
			ValorTotal:    e.ValorTotal,
			SaldoNegativo: e.SaldoNegativo,
		})
		saldoFinal = e.StockNuevo
	}

	return &dto.KardexResponse{
		ProductoID:   productoID,
		ContenedorID: contenedorID,
		SaldoFinal:   saldoFinal,
		Items:        items,
	}, nil
}
