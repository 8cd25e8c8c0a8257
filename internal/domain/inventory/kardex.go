package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// EntradaKardex es una fila del kardex: el movimiento más el saldo corrido
// recalculado desde la secuencia (no se confía en la foto persistida).
type EntradaKardex struct {
	Movimiento    *entity.Movimiento
	StockAnterior decimal.Decimal
	StockNuevo    decimal.Decimal
	Delta         decimal.Decimal // con signo: + entrada, - salida, ± ajuste
	ValorTotal    decimal.Decimal // |cantidad| × precio unidad; 0 sin precio
	SaldoNegativo bool            // la salida dejó el saldo por debajo de cero
}

// DeltaConSigno devuelve el efecto del movimiento sobre el saldo.
// Una salida se registra con cantidad positiva; el signo lo aporta el tipo.
// En un ajuste la cantidad ya es un delta con signo (semántica única de la app).
func DeltaConSigno(tipo string, cantidad decimal.Decimal) decimal.Decimal {
	switch tipo {
	case entity.MovimientoEntrada:
		return cantidad
	case entity.MovimientoSalida:
		return cantidad.Neg()
	case entity.MovimientoAjuste:
		return cantidad
	}
	return decimal.Zero
}

// Acumular recorre los movimientos en orden no decreciente de fecha (empates
// por orden de inserción) y produce el kardex con saldo corrido partiendo de
// saldoInicial. No rechaza saldos negativos: los marca con SaldoNegativo para
// que la capa superior los advierta. Determinista e idempotente sobre la misma
// secuencia; si la secuencia cambia hay que recalcular desde el inicio.
func Acumular(movs []*entity.Movimiento, saldoInicial decimal.Decimal) []EntradaKardex {
	entradas := make([]EntradaKardex, 0, len(movs))
	saldo := saldoInicial
	for _, m := range movs {
		delta := DeltaConSigno(m.Tipo, m.Cantidad)
		anterior := saldo
		nuevo := anterior.Add(delta)

		valor := decimal.Zero
		if m.PrecioUnidad != nil {
			valor = m.Cantidad.Abs().Mul(*m.PrecioUnidad)
		}

		entradas = append(entradas, EntradaKardex{
			Movimiento:    m,
			StockAnterior: anterior,
			StockNuevo:    nuevo,
			Delta:         delta,
			ValorTotal:    valor,
			SaldoNegativo: nuevo.IsNegative(),
		})
		saldo = nuevo
	}
	return entradas
}

// SaldoFinal devuelve el saldo resultante de aplicar los movimientos sobre
// saldoInicial, sin materializar el kardex completo.
func SaldoFinal(movs []*entity.Movimiento, saldoInicial decimal.Decimal) decimal.Decimal {
	saldo := saldoInicial
	for _, m := range movs {
		saldo = saldo.Add(DeltaConSigno(m.Tipo, m.Cantidad))
	}
	return saldo
}
