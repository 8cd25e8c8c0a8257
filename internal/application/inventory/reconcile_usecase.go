package inventory

import (
	"context"
	"time"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/logger"
)

// ReconcileUseCase recorre todas las existencias visibles y reescribe la
// etiqueta estado_calculado cuando quedó desactualizada (el tiempo pasa aunque
// nadie mueva stock). Es best-effort: un fallo en una fila se registra y se
// sigue con la siguiente.
type ReconcileUseCase struct {
	registroRepo   repository.ContenedorProductoRepository
	contenedorRepo repository.ContenedorRepository
	log            *logger.Logger
	umbralDias     int
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(
	registroRepo repository.ContenedorProductoRepository,
	contenedorRepo repository.ContenedorRepository,
	log *logger.Logger,
	umbralDias int,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		registroRepo:   registroRepo,
		contenedorRepo: contenedorRepo,
		log:            log,
		umbralDias:     umbralDias,
	}
}

// Run ejecuta un pase de reconciliación y devuelve el conteo de filas
// revisadas, actualizadas y fallidas.
func (uc *ReconcileUseCase) Run(ctx context.Context) (*dto.ReconciliacionResponse, error) {
	registros, err := uc.registroRepo.ListVisibles(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := &dto.ReconciliacionResponse{}
	congeladores := make(map[string]bool)

	for _, r := range registros {
		out.Revisados++

		congelado, ok := congeladores[r.ContenedorID]
		if !ok {
			c, err := uc.contenedorRepo.GetByID(ctx, r.ContenedorID)
			if err != nil {
				uc.log.Error().Err(err).
					Str("registro_id", r.ID).
					Str("contenedor_id", r.ContenedorID).
					Msg("reconciliación: no se pudo leer el contenedor")
				out.Fallidos++
				continue
			}
			congelado = c != nil && c.EsCongelador()
			congeladores[r.ContenedorID] = congelado
		}

		cl := dominv.Clasificar(r.FechaVencimiento, now, congelado, uc.umbralDias)
		if cl.Estado == r.EstadoCalculado {
			continue
		}
		if err := uc.registroRepo.UpdateEstadoCalculado(ctx, r.ID, cl.Estado); err != nil {
			uc.log.Error().Err(err).
				Str("registro_id", r.ID).
				Str("estado", cl.Estado).
				Msg("reconciliación: no se pudo actualizar el estado")
			out.Fallidos++
			continue
		}
		out.Actualizados++
	}

	uc.log.Info().
		Int("revisados", out.Revisados).
		Int("actualizados", out.Actualizados).
		Int("fallidos", out.Fallidos).
		Msg("reconciliación de estados completada")
	return out, nil
}
