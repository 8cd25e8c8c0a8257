package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fechaPtr(y int, m time.Month, d int) *time.Time {
	t := fecha(y, m, d)
	return &t
}

func TestClasificar_PorVencerDentroDelUmbral(t *testing.T) {
	ref := fecha(2025, time.January, 10)

	cl := inventory.Clasificar(fechaPtr(2025, time.January, 15), ref, false, 7)

	assert.Equal(t, inventory.EstadoPorVencer, cl.Estado)
	require.NotNil(t, cl.DiasParaVencer)
	assert.Equal(t, 5, *cl.DiasParaVencer)
}

func TestClasificar_VencidoConDiasNegativos(t *testing.T) {
	ref := fecha(2025, time.January, 10)

	cl := inventory.Clasificar(fechaPtr(2025, time.January, 5), ref, false, 7)

	assert.Equal(t, inventory.EstadoVencido, cl.Estado)
	require.NotNil(t, cl.DiasParaVencer)
	assert.Equal(t, -5, *cl.DiasParaVencer)
}

func TestClasificar_FrescoMasAllaDelUmbral(t *testing.T) {
	ref := fecha(2025, time.January, 10)

	cl := inventory.Clasificar(fechaPtr(2025, time.January, 30), ref, false, 7)

	assert.Equal(t, inventory.EstadoFresco, cl.Estado)
	require.NotNil(t, cl.DiasParaVencer)
	assert.Equal(t, 20, *cl.DiasParaVencer)
}

// Frontera exacta: vence hoy (0 días) y en el día del umbral cuentan como por_vencer;
// un día después del umbral ya es fresco.
func TestClasificar_Fronteras(t *testing.T) {
	ref := fecha(2025, time.March, 1)

	hoy := inventory.Clasificar(fechaPtr(2025, time.March, 1), ref, false, 7)
	assert.Equal(t, inventory.EstadoPorVencer, hoy.Estado)
	assert.Equal(t, 0, *hoy.DiasParaVencer)

	enElUmbral := inventory.Clasificar(fechaPtr(2025, time.March, 8), ref, false, 7)
	assert.Equal(t, inventory.EstadoPorVencer, enElUmbral.Estado)
	assert.Equal(t, 7, *enElUmbral.DiasParaVencer)

	unDiaDespues := inventory.Clasificar(fechaPtr(2025, time.March, 9), ref, false, 7)
	assert.Equal(t, inventory.EstadoFresco, unDiaDespues.Estado)
	assert.Equal(t, 8, *unDiaDespues.DiasParaVencer)
}

// La hora del día no cambia la clasificación: la granularidad es día calendario.
func TestClasificar_IgnoraHoraDelDia(t *testing.T) {
	ref := time.Date(2025, time.January, 10, 23, 55, 0, 0, time.UTC)
	venc := time.Date(2025, time.January, 11, 0, 5, 0, 0, time.UTC)

	cl := inventory.Clasificar(&venc, ref, false, 7)

	require.NotNil(t, cl.DiasParaVencer)
	assert.Equal(t, 1, *cl.DiasParaVencer)
	assert.Equal(t, inventory.EstadoPorVencer, cl.Estado)
}

func TestClasificar_SinFechaNuncaVence(t *testing.T) {
	refs := []time.Time{
		fecha(2020, time.January, 1),
		fecha(2030, time.December, 31),
	}
	for _, ref := range refs {
		cl := inventory.Clasificar(nil, ref, false, 7)
		assert.Equal(t, inventory.EstadoFresco, cl.Estado)
		assert.Nil(t, cl.DiasParaVencer)
	}
}

func TestClasificar_SinFechaEnCongeladorEsCongelado(t *testing.T) {
	cl := inventory.Clasificar(nil, fecha(2025, time.June, 1), true, 7)

	assert.Equal(t, inventory.EstadoCongelado, cl.Estado)
	assert.Nil(t, cl.DiasParaVencer)
}

// En contexto congelador la fecha sigue mandando: un producto congelado vencido
// se reporta vencido, y uno lejano se reporta congelado (no fresco).
func TestClasificar_CongeladorConFecha(t *testing.T) {
	ref := fecha(2025, time.January, 10)

	vencido := inventory.Clasificar(fechaPtr(2025, time.January, 1), ref, true, 7)
	assert.Equal(t, inventory.EstadoVencido, vencido.Estado)

	lejano := inventory.Clasificar(fechaPtr(2025, time.June, 1), ref, true, 7)
	assert.Equal(t, inventory.EstadoCongelado, lejano.Estado)
}

func TestClasificar_UmbralConfigurable(t *testing.T) {
	ref := fecha(2025, time.January, 10)
	venc := fechaPtr(2025, time.January, 15) // 5 días

	conUmbral3 := inventory.Clasificar(venc, ref, false, 3)
	assert.Equal(t, inventory.EstadoFresco, conUmbral3.Estado)

	conUmbral10 := inventory.Clasificar(venc, ref, false, 10)
	assert.Equal(t, inventory.EstadoPorVencer, conUmbral10.Estado)
}

func TestClasificar_UmbralNegativoUsaDefault(t *testing.T) {
	ref := fecha(2025, time.January, 10)

	cl := inventory.Clasificar(fechaPtr(2025, time.January, 15), ref, false, -1)

	assert.Equal(t, inventory.EstadoPorVencer, cl.Estado)
}
