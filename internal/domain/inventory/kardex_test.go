package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mov(tipo, cantidad string, precio *decimal.Decimal, dia int) *entity.Movimiento {
	return &entity.Movimiento{
		ID:           tipo + "-" + cantidad,
		ProductoID:   "prod-1",
		ContenedorID: "cont-1",
		Tipo:         tipo,
		Cantidad:     dec(cantidad),
		PrecioUnidad: precio,
		Fecha:        time.Date(2025, time.February, dia, 10, 0, 0, 0, time.UTC),
	}
}

// Secuencia del ejemplo: 0 → entrada 20 → salida 5 → ajuste +2 = 17.
func TestAcumular_SaldoCorrido(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "20", nil, 1),
		mov(entity.MovimientoSalida, "5", nil, 2),
		mov(entity.MovimientoAjuste, "2", nil, 3),
	}

	kardex := inventory.Acumular(movs, decimal.Zero)
	require.Len(t, kardex, 3)

	assert.True(t, kardex[0].StockAnterior.IsZero())
	assert.True(t, kardex[0].StockNuevo.Equal(dec("20")))
	assert.True(t, kardex[1].StockNuevo.Equal(dec("15")))
	assert.True(t, kardex[2].StockNuevo.Equal(dec("17")))
}

// Continuidad de cadena: stock_nuevo_i == stock_anterior_{i+1} y
// stock_nuevo_i == stock_anterior_i + delta_i para cualquier secuencia.
func TestAcumular_ContinuidadDeCadena(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "10.5", nil, 1),
		mov(entity.MovimientoSalida, "3.25", nil, 2),
		mov(entity.MovimientoEntrada, "7", nil, 3),
		mov(entity.MovimientoAjuste, "-1.25", nil, 4),
		mov(entity.MovimientoSalida, "9", nil, 5),
	}

	kardex := inventory.Acumular(movs, dec("2"))

	for i, e := range kardex {
		assert.True(t, e.StockNuevo.Equal(e.StockAnterior.Add(e.Delta)),
			"fila %d: stock_nuevo debe ser stock_anterior + delta", i)
		if i > 0 {
			assert.True(t, e.StockAnterior.Equal(kardex[i-1].StockNuevo),
				"fila %d: el saldo debe encadenar con la fila anterior", i)
		}
	}
	assert.True(t, kardex[len(kardex)-1].StockNuevo.Equal(
		inventory.SaldoFinal(movs, dec("2"))))
}

// El ajuste es delta con signo: nunca un valor absoluto.
func TestAcumular_AjusteEsDelta(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "10", nil, 1),
		mov(entity.MovimientoAjuste, "-4", nil, 2),
		mov(entity.MovimientoAjuste, "4", nil, 3),
	}

	kardex := inventory.Acumular(movs, decimal.Zero)

	assert.True(t, kardex[1].StockNuevo.Equal(dec("6")))
	assert.True(t, kardex[2].StockNuevo.Equal(dec("10")))
}

// Una salida mayor al saldo no se rechaza: queda saldo negativo marcado.
func TestAcumular_PermiteSaldoNegativo(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "5", nil, 1),
		mov(entity.MovimientoSalida, "8", nil, 2),
		mov(entity.MovimientoEntrada, "10", nil, 3),
	}

	kardex := inventory.Acumular(movs, decimal.Zero)

	assert.True(t, kardex[1].StockNuevo.Equal(dec("-3")))
	assert.True(t, kardex[1].SaldoNegativo)
	assert.True(t, kardex[2].StockNuevo.Equal(dec("7")))
	assert.False(t, kardex[2].SaldoNegativo)
}

func TestAcumular_ValorTotal(t *testing.T) {
	precio := dec("12.50")
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "4", &precio, 1),
		mov(entity.MovimientoSalida, "2", &precio, 2),
		mov(entity.MovimientoEntrada, "3", nil, 3), // sin precio -> valor 0
	}

	kardex := inventory.Acumular(movs, decimal.Zero)

	assert.True(t, kardex[0].ValorTotal.Equal(dec("50")))
	assert.True(t, kardex[1].ValorTotal.Equal(dec("25")))
	assert.True(t, kardex[2].ValorTotal.IsZero())
}

// Idempotencia: la misma secuencia produce el mismo kardex, sin estado oculto.
func TestAcumular_Idempotente(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoEntrada, "20", nil, 1),
		mov(entity.MovimientoSalida, "5", nil, 2),
		mov(entity.MovimientoAjuste, "2", nil, 3),
	}

	primera := inventory.Acumular(movs, decimal.Zero)
	segunda := inventory.Acumular(movs, decimal.Zero)

	require.Equal(t, len(primera), len(segunda))
	for i := range primera {
		assert.True(t, primera[i].StockNuevo.Equal(segunda[i].StockNuevo))
		assert.True(t, primera[i].Delta.Equal(segunda[i].Delta))
	}
}

func TestDeltaConSigno(t *testing.T) {
	assert.True(t, inventory.DeltaConSigno(entity.MovimientoEntrada, dec("3")).Equal(dec("3")))
	assert.True(t, inventory.DeltaConSigno(entity.MovimientoSalida, dec("3")).Equal(dec("-3")))
	assert.True(t, inventory.DeltaConSigno(entity.MovimientoAjuste, dec("-3")).Equal(dec("-3")))
	assert.True(t, inventory.DeltaConSigno("otro", dec("3")).IsZero())
}
