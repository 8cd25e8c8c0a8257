package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contenedor físico.
const (
	ContenedorCongelador    = "congelador"
	ContenedorRefrigerador  = "refrigerador"
	ContenedorAlmacenSeco   = "almacen_seco"
	ContenedorAlmacenHumedo = "almacen_humedo"
)

// Estados operativos de un contenedor.
const (
	ContenedorActivo        = "activo"
	ContenedorMantenimiento = "mantenimiento"
	ContenedorInactivo      = "inactivo"
)

// Contenedor representa una unidad física de almacenamiento del restaurante
// (congelador, refrigerador, almacén seco o húmedo).
// Capacidad es un techo blando: se usa para el porcentaje de uso en el
// dashboard y nunca bloquea escrituras.
type Contenedor struct {
	ID                  string
	Nombre              string
	Tipo                string
	Capacidad           decimal.Decimal // 0 = sin capacidad configurada
	UnidadCapacidad     string          // kg, l
	TemperaturaObjetivo *decimal.Decimal
	HumedadObjetivo     *decimal.Decimal
	Estado              string
	Visible             bool // soft delete
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EsCongelador indica si el contenedor impone contexto de congelado a sus productos.
func (c *Contenedor) EsCongelador() bool {
	return c.Tipo == ContenedorCongelador
}

// TipoContenedorValido valida el tipo recibido en requests.
func TipoContenedorValido(tipo string) bool {
	switch tipo {
	case ContenedorCongelador, ContenedorRefrigerador, ContenedorAlmacenSeco, ContenedorAlmacenHumedo:
		return true
	}
	return false
}

// EstadoContenedorValido valida el estado recibido en requests.
func EstadoContenedorValido(estado string) bool {
	switch estado {
	case ContenedorActivo, ContenedorMantenimiento, ContenedorInactivo:
		return true
	}
	return false
}
