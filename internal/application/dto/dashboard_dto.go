package dto

import "github.com/shopspring/decimal"

// ResumenContenedorDTO tarjeta del dashboard para un contenedor.
// PorcentajeCapacidad es el valor crudo (puede superar 100);
// PorcentajeDisplay ya trae el tope visual del 100%.
type ResumenContenedorDTO struct {
	ContenedorID        string          `json:"contenedor_id"`
	Nombre              string          `json:"nombre"`
	Tipo                string          `json:"tipo"`
	Estado              string          `json:"estado"`
	TotalProductos      int             `json:"total_productos"`
	CantidadTotal       decimal.Decimal `json:"cantidad_total"`
	ValorTotal          decimal.Decimal `json:"valor_total"`
	PorEstado           map[string]int  `json:"por_estado"`
	CapacidadUsada      decimal.Decimal `json:"capacidad_usada"`
	Capacidad           decimal.Decimal `json:"capacidad"`
	PorcentajeCapacidad int             `json:"porcentaje_capacidad"`
	PorcentajeDisplay   int             `json:"porcentaje_display"`
	SobreCapacidad      bool            `json:"sobre_capacidad"`
}

// DashboardResponse resumen global + tarjetas por contenedor.
type DashboardResponse struct {
	TotalContenedores    int                    `json:"total_contenedores"`
	TotalProductos       int                    `json:"total_productos"`
	ValorInventario      decimal.Decimal        `json:"valor_inventario"`
	AlertasPorVencer     int                    `json:"alertas_por_vencer"`
	AlertasVencidos      int                    `json:"alertas_vencidos"`
	SobreCapacidad       int                    `json:"sobre_capacidad"`
	Contenedores         []ResumenContenedorDTO `json:"contenedores"`
}
