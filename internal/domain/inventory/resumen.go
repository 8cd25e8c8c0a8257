package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// ResumenContenedor es el rollup por contenedor que alimenta las tarjetas del
// dashboard. Derivado bajo demanda de las existencias actuales; no se cachea.
type ResumenContenedor struct {
	ContenedorID        string
	TotalProductos      int
	CantidadTotal       decimal.Decimal
	ValorTotal          decimal.Decimal
	PorEstado           map[string]int // estado de vencimiento -> cantidad de registros
	CapacidadUsada      decimal.Decimal
	PorcentajeCapacidad int // redondeado, SIN tope: >100 representa sobrecapacidad
}

// Resumir clasifica cada existencia con la fecha de referencia, cuenta por
// estado y suma cantidad y valor. La capacidad usada es la suma de cantidades;
// el porcentaje se calcula crudo (el tope al 100% es cosa de la capa de
// presentación, ver ClampPorcentaje).
func Resumir(registros []*entity.ContenedorProducto, c *entity.Contenedor, ref time.Time, umbralDias int) ResumenContenedor {
	res := ResumenContenedor{
		ContenedorID:   c.ID,
		CantidadTotal:  decimal.Zero,
		ValorTotal:     decimal.Zero,
		CapacidadUsada: decimal.Zero,
		PorEstado: map[string]int{
			EstadoFresco:    0,
			EstadoCongelado: 0,
			EstadoPorVencer: 0,
			EstadoVencido:   0,
		},
	}

	for _, r := range registros {
		cl := Clasificar(r.FechaVencimiento, ref, c.EsCongelador(), umbralDias)
		res.PorEstado[cl.Estado]++
		res.TotalProductos++
		res.CantidadTotal = res.CantidadTotal.Add(r.Cantidad)
		res.ValorTotal = res.ValorTotal.Add(r.Cantidad.Mul(r.PrecioRealUnidad))
	}

	res.CapacidadUsada = res.CantidadTotal
	if c.Capacidad.IsPositive() {
		res.PorcentajeCapacidad = int(res.CapacidadUsada.
			Mul(decimal.NewFromInt(100)).
			Div(c.Capacidad).
			Round(0).IntPart())
	}
	return res
}

// SobreCapacidad indica si el contenedor excede su capacidad configurada.
func (r ResumenContenedor) SobreCapacidad() bool {
	return r.PorcentajeCapacidad > 100
}

// ClampPorcentaje aplica el tope visual del 100%. Solo para presentación:
// la agregación siempre reporta el porcentaje crudo.
func ClampPorcentaje(p int) int {
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
