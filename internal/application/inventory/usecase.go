package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/logger"
)

// RegisterMovimientoUseCase registra movimientos (entrada, salida, ajuste) de
// forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Una salida que deja el saldo negativo NO se rechaza: se registra y se
// advierte en el log (comportamiento permisivo documentado en DESIGN.md).
type RegisterMovimientoUseCase struct {
	txRunner       TxRunner
	productoRepo   repository.ProductoRepository
	contenedorRepo repository.ContenedorRepository
	log            *logger.Logger
	umbralDias     int
}

// NewRegisterMovimientoUseCase construye el caso de uso.
func NewRegisterMovimientoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	contenedorRepo repository.ContenedorRepository,
	log *logger.Logger,
	umbralDias int,
) *RegisterMovimientoUseCase {
	return &RegisterMovimientoUseCase{
		txRunner:       txRunner,
		productoRepo:   productoRepo,
		contenedorRepo: contenedorRepo,
		log:            log,
		umbralDias:     umbralDias,
	}
}

// Register valida la entrada, abre la transacción, bloquea la fila de la
// existencia, aplica el delta según el tipo y persiste existencia + movimiento.
func (uc *RegisterMovimientoUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Tipo {
	case entity.MovimientoEntrada, entity.MovimientoSalida:
		// Cantidad siempre positiva; la dirección la da el tipo, no el signo.
		if !in.Cantidad.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovimientoAjuste:
		// La cantidad de un ajuste es un delta con signo; cero no ajusta nada.
		if in.Cantidad.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.PrecioUnidad != nil && in.PrecioUnidad.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(ctx, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	contenedor, err := uc.contenedorRepo.GetByID(ctx, in.ContenedorID)
	if err != nil {
		return nil, err
	}
	if contenedor == nil {
		return nil, domain.ErrNotFound
	}
	// Un producto perecedero no entra sin fecha de vencimiento.
	if in.Tipo == entity.MovimientoEntrada && producto.Perecedero && in.FechaVencimiento == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var out *dto.MovimientoResponse

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		registroRepo repository.ContenedorProductoRepository,
	) error {
		// Bloquea la fila de la existencia para evitar carreras entre escritores.
		registro, err := registroRepo.GetForUpdate(ctx, in.ContenedorID, in.ProductoID)
		if err != nil {
			return err
		}

		anterior := registro.Cantidad
		delta := dominv.DeltaConSigno(in.Tipo, in.Cantidad)
		nuevo := anterior.Add(delta)

		if nuevo.IsNegative() {
			uc.log.Warn().
				Str("producto_id", in.ProductoID).
				Str("contenedor_id", in.ContenedorID).
				Str("tipo_movimiento", in.Tipo).
				Str("stock_nuevo", nuevo.String()).
				Msg("movimiento deja saldo negativo")
		}

		esNuevo := registro.ID == ""
		if esNuevo {
			registro.ID = uuid.New().String()
			registro.Unidad = producto.UnidadMedida
			registro.PrecioRealUnidad = producto.PrecioRealUnidad
			registro.CreatedAt = now
		}
		registro.Cantidad = nuevo
		if in.Tipo == entity.MovimientoEntrada {
			if in.PrecioUnidad != nil {
				registro.PrecioRealUnidad = *in.PrecioUnidad
			}
			if in.FechaVencimiento != nil {
				registro.FechaVencimiento = in.FechaVencimiento
			}
			if in.Unidad != "" {
				registro.Unidad = in.Unidad
			}
			if in.Empaquetado != "" {
				registro.Empaquetado = in.Empaquetado
			}
			if in.NumEmpaques != nil {
				registro.NumEmpaques = in.NumEmpaques
			}
		}
		// Refresca la etiqueta denormalizada; es caché, la verdad se recalcula al leer.
		cl := dominv.Clasificar(registro.FechaVencimiento, now, contenedor.EsCongelador(), uc.umbralDias)
		registro.EstadoCalculado = cl.Estado
		registro.UpdatedAt = now

		// Fila nueva: Upsert resuelve la carrera entre dos primeras inserciones
		// sobre (contenedor, producto). Fila existente: ya está bloqueada, Update directo.
		if esNuevo {
			if err := registroRepo.Upsert(ctx, registro); err != nil {
				return err
			}
		} else {
			if err := registroRepo.Update(ctx, registro); err != nil {
				return err
			}
		}

		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			ProductoID:    in.ProductoID,
			ContenedorID:  in.ContenedorID,
			Tipo:          in.Tipo,
			Cantidad:      in.Cantidad,
			PrecioUnidad:  in.PrecioUnidad,
			Motivo:        in.Motivo,
			Observaciones: in.Observaciones,
			StockAnterior: anterior,
			StockNuevo:    nuevo,
			Fecha:         now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		out = ToMovimientoResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToMovimientoResponse mapea la entidad al DTO de salida.
func ToMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:            m.ID,
		ProductoID:    m.ProductoID,
		ContenedorID:  m.ContenedorID,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		PrecioUnidad:  m.PrecioUnidad,
		Motivo:        m.Motivo,
		Observaciones: m.Observaciones,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Fecha:         m.Fecha,
		CreatedBy:     m.CreatedBy,
	}
}
