// Package inventory contiene los servicios de dominio puros del inventario:
// clasificación de vencimiento, acumulador de kardex y resumen por contenedor.
// Sin persistencia ni efectos secundarios; toda la lógica es determinista dada
// la fecha de referencia.
package inventory

import "time"

// Estados de frescura derivados de la fecha de vencimiento.
const (
	EstadoFresco    = "fresco"
	EstadoCongelado = "congelado"
	EstadoPorVencer = "por_vencer"
	EstadoVencido   = "vencido"
)

// UmbralPorVencerDefault días restantes para clasificar "por_vencer" si no se configura otro valor.
const UmbralPorVencerDefault = 7

// Clasificacion es el estado derivado de una existencia. DiasParaVencer es nil
// cuando no hay fecha de vencimiento (negativo = ya vencido).
type Clasificacion struct {
	Estado         string
	DiasParaVencer *int
}

// Clasificar deriva el estado de frescura a partir de la fecha de vencimiento.
// Reglas en orden, gana la primera:
//  1. Sin fecha -> congelado si el contexto es congelador, si no fresco; días nil.
//  2. dias < 0            -> vencido
//  3. 0 <= dias <= umbral -> por_vencer
//  4. resto               -> fresco (o congelado en contexto congelador)
//
// La granularidad es de día calendario: vence "hoy" cuenta como 0 días.
// El resultado nunca debe persistirse como fuente de verdad; recalcular en cada lectura.
func Clasificar(fechaVencimiento *time.Time, ref time.Time, congelado bool, umbralDias int) Clasificacion {
	sinVencer := EstadoFresco
	if congelado {
		sinVencer = EstadoCongelado
	}
	if fechaVencimiento == nil {
		return Clasificacion{Estado: sinVencer}
	}
	if umbralDias < 0 {
		umbralDias = UmbralPorVencerDefault
	}

	dias := diasCalendario(ref, *fechaVencimiento)
	switch {
	case dias < 0:
		return Clasificacion{Estado: EstadoVencido, DiasParaVencer: &dias}
	case dias <= umbralDias:
		return Clasificacion{Estado: EstadoPorVencer, DiasParaVencer: &dias}
	default:
		return Clasificacion{Estado: sinVencer, DiasParaVencer: &dias}
	}
}

// diasCalendario devuelve la diferencia en días calendario entre dos fechas,
// ignorando la hora del día y la zona horaria de cada una.
func diasCalendario(desde, hasta time.Time) int {
	d := soloFecha(desde)
	h := soloFecha(hasta)
	return int(h.Sub(d).Hours() / 24)
}

func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
