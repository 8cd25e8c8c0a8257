package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
)

func registro(cantidad, precio string, venc *time.Time) *entity.ContenedorProducto {
	return &entity.ContenedorProducto{
		ID:               "reg-" + cantidad,
		ContenedorID:     "cont-1",
		ProductoID:       "prod-1",
		Cantidad:         dec(cantidad),
		PrecioRealUnidad: dec(precio),
		FechaVencimiento: venc,
		Visible:          true,
	}
}

func contenedor(tipo string, capacidad string) *entity.Contenedor {
	return &entity.Contenedor{
		ID:        "cont-1",
		Nombre:    "Congeladora 1",
		Tipo:      tipo,
		Capacidad: dec(capacidad),
		Estado:    entity.ContenedorActivo,
		Visible:   true,
	}
}

func TestResumir_TotalesAditivos(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{
		registro("10", "5.00", fechaPtr(2025, time.January, 12)),  // por_vencer
		registro("4", "2.50", fechaPtr(2025, time.January, 5)),    // vencido
		registro("6", "1.00", fechaPtr(2025, time.March, 1)),      // fresco
		registro("2", "0", nil),                                   // fresco (sin fecha)
	}

	res := inventory.Resumir(registros, contenedor(entity.ContenedorRefrigerador, "100"), ref, 7)

	assert.Equal(t, 4, res.TotalProductos)
	assert.True(t, res.CantidadTotal.Equal(dec("22")))
	assert.True(t, res.CapacidadUsada.Equal(res.CantidadTotal),
		"la capacidad usada debe ser la suma de cantidades")
	// 10*5 + 4*2.5 + 6*1 + 2*0 = 66
	assert.True(t, res.ValorTotal.Equal(dec("66")))

	total := 0
	for _, n := range res.PorEstado {
		total += n
	}
	assert.Equal(t, len(registros), total, "los buckets deben sumar el total de registros")
	assert.Equal(t, 2, res.PorEstado[inventory.EstadoFresco])
	assert.Equal(t, 1, res.PorEstado[inventory.EstadoPorVencer])
	assert.Equal(t, 1, res.PorEstado[inventory.EstadoVencido])
}

func TestResumir_EnCongeladorSinFechaCuentaComoCongelado(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{
		registro("3", "1", nil),
		registro("5", "1", fechaPtr(2025, time.June, 1)),
	}

	res := inventory.Resumir(registros, contenedor(entity.ContenedorCongelador, "50"), ref, 7)

	assert.Equal(t, 2, res.PorEstado[inventory.EstadoCongelado])
	assert.Equal(t, 0, res.PorEstado[inventory.EstadoFresco])
}

// Sobrecapacidad representable: capacidad 100, uso 150 → 150% crudo; el tope
// al 100 solo lo aplica ClampPorcentaje en presentación.
func TestResumir_PorcentajeSinTope(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{
		registro("150", "1", nil),
	}

	res := inventory.Resumir(registros, contenedor(entity.ContenedorAlmacenSeco, "100"), ref, 7)

	assert.Equal(t, 150, res.PorcentajeCapacidad)
	assert.True(t, res.SobreCapacidad())
	assert.Equal(t, 100, inventory.ClampPorcentaje(res.PorcentajeCapacidad))
}

func TestResumir_SinCapacidadPorcentajeCero(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{registro("30", "1", nil)}

	res := inventory.Resumir(registros, contenedor(entity.ContenedorAlmacenSeco, "0"), ref, 7)

	assert.Equal(t, 0, res.PorcentajeCapacidad)
	assert.False(t, res.SobreCapacidad())
}

func TestResumir_PorcentajeRedondeado(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{registro("1", "1", nil)}

	res := inventory.Resumir(registros, contenedor(entity.ContenedorAlmacenSeco, "3"), ref, 7)

	// 100/3 = 33.33 → 33
	assert.Equal(t, 33, res.PorcentajeCapacidad)
}

func TestResumir_VacioTodoEnCero(t *testing.T) {
	res := inventory.Resumir(nil, contenedor(entity.ContenedorRefrigerador, "100"), fecha(2025, time.January, 1), 7)

	assert.Equal(t, 0, res.TotalProductos)
	assert.True(t, res.CantidadTotal.IsZero())
	assert.True(t, res.ValorTotal.IsZero())
	assert.Equal(t, 0, res.PorcentajeCapacidad)
}

// Idempotencia: mismos insumos y misma fecha de referencia, mismo resumen.
func TestResumir_Idempotente(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	registros := []*entity.ContenedorProducto{
		registro("10", "5.00", fechaPtr(2025, time.January, 12)),
		registro("4", "2.50", fechaPtr(2025, time.January, 5)),
	}
	cont := contenedor(entity.ContenedorRefrigerador, "100")

	a := inventory.Resumir(registros, cont, ref, 7)
	b := inventory.Resumir(registros, cont, ref, 7)

	require.Equal(t, a.PorEstado, b.PorEstado)
	assert.True(t, a.ValorTotal.Equal(b.ValorTotal))
	assert.Equal(t, a.PorcentajeCapacidad, b.PorcentajeCapacidad)
}
