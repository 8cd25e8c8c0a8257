package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario (tipo_movimiento).
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste" // la cantidad es un delta con signo
)

// Motivos frecuentes de movimiento. El campo acepta otros valores libres.
const (
	MotivoCompra      = "compra"
	MotivoConsumo     = "consumo"
	MotivoMerma       = "merma"
	MotivoCaducidad   = "caducidad"
	MotivoCorreccion  = "correccion"
	MotivoTransaccion = "transaccion"
)

// Movimiento es un hecho inmutable: un cambio de cantidad de un producto en un
// contenedor. Cantidad es siempre positiva para entrada/salida (el signo lo da
// el tipo); en un ajuste la cantidad es el delta con signo. Una corrección se
// expresa como un nuevo ajuste, nunca mutando el movimiento original.
//
// StockAnterior/StockNuevo (stock_anterior/stock_nuevo) son la foto del saldo
// al momento de aplicar el movimiento.
type Movimiento struct {
	ID            string
	ProductoID    string
	ContenedorID  string
	Tipo          string
	Cantidad      decimal.Decimal
	PrecioUnidad  *decimal.Decimal // opcional; sin precio el valor del movimiento es 0
	Motivo        string
	Observaciones string
	StockAnterior decimal.Decimal
	StockNuevo    decimal.Decimal
	Fecha         time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// TipoMovimientoValido valida el tipo recibido en requests.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste:
		return true
	}
	return false
}
