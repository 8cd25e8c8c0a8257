package analytics

import (
	"context"
	"time"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// listado grande pero acotado: un restaurante no tiene miles de contenedores
const maxContenedores = 500

// DashboardUseCase arma el resumen global del inventario: una tarjeta por
// contenedor (conteos por estado de vencimiento, valor, uso de capacidad) y
// los totales y alertas agregados. Todo se calcula en vivo sobre las
// existencias visibles; nada se cachea.
type DashboardUseCase struct {
	resumenRepo    repository.ResumenRepository
	contenedorRepo repository.ContenedorRepository
	umbralDias     int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	resumenRepo repository.ResumenRepository,
	contenedorRepo repository.ContenedorRepository,
	umbralDias int,
) *DashboardUseCase {
	return &DashboardUseCase{
		resumenRepo:    resumenRepo,
		contenedorRepo: contenedorRepo,
		umbralDias:     umbralDias,
	}
}

// GetDashboard calcula el resumen completo con la fecha de referencia "ahora".
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	contenedores, err := uc.contenedorRepo.List(ctx, maxContenedores, 0)
	if err != nil {
		return nil, err
	}
	filas, err := uc.resumenRepo.ListRegistrosVisibles(ctx)
	if err != nil {
		return nil, err
	}

	// agrupa las filas planas por contenedor
	porContenedor := make(map[string][]*entity.ContenedorProducto, len(contenedores))
	for _, f := range filas {
		porContenedor[f.ContenedorID] = append(porContenedor[f.ContenedorID], &entity.ContenedorProducto{
			ID:               f.RegistroID,
			ContenedorID:     f.ContenedorID,
			ProductoID:       f.ProductoID,
			Cantidad:         f.Cantidad,
			PrecioRealUnidad: f.PrecioRealUnidad,
			FechaVencimiento: f.FechaVencimiento,
		})
	}

	now := time.Now()
	out := &dto.DashboardResponse{
		TotalContenedores: len(contenedores),
		ValorInventario:   decimal.Zero,
		Contenedores:      make([]dto.ResumenContenedorDTO, 0, len(contenedores)),
	}

	for _, c := range contenedores {
		res := dominv.Resumir(porContenedor[c.ID], c, now, uc.umbralDias)

		out.TotalProductos += res.TotalProductos
		out.ValorInventario = out.ValorInventario.Add(res.ValorTotal)
		out.AlertasPorVencer += res.PorEstado[dominv.EstadoPorVencer]
		out.AlertasVencidos += res.PorEstado[dominv.EstadoVencido]
		if res.SobreCapacidad() {
			out.SobreCapacidad++
		}

		out.Contenedores = append(out.Contenedores, dto.ResumenContenedorDTO{
			ContenedorID:        c.ID,
			Nombre:              c.Nombre,
			Tipo:                c.Tipo,
			Estado:              c.Estado,
			TotalProductos:      res.TotalProductos,
			CantidadTotal:       res.CantidadTotal,
			ValorTotal:          res.ValorTotal,
			PorEstado:           res.PorEstado,
			CapacidadUsada:      res.CapacidadUsada,
			Capacidad:           c.Capacidad,
			PorcentajeCapacidad: res.PorcentajeCapacidad,
			PorcentajeDisplay:   dominv.ClampPorcentaje(res.PorcentajeCapacidad),
			SobreCapacidad:      res.SobreCapacidad(),
		})
	}
	return out, nil
}
