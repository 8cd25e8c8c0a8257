// Package pdf implementa la generación del reporte Kardex en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + título KARDEX  │  Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: nombre / categoría / unidad                       │
//	│  CONTENEDOR: nombre / tipo                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | Anterior | Nuevo | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO FINAL                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa reportes.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	producto *entity.Producto,
	contenedor *entity.Contenedor,
	entradas []dominv.EntradaKardex,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(producto))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productoRow(producto))
	m.AddRows(contenedorRow(contenedor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(entradas, producto.UnidadMedida) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(saldoFinalRow(entradas, producto.UnidadMedida))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de emisión (der).
func headerRow(producto *entity.Producto) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(producto.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// productoRow: datos del producto.
func productoRow(producto *entity.Producto) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Categoría: %s   |   Unidad: %s   |   Perecedero: %s",
				nonEmpty(producto.Categoria, "—"),
				nonEmpty(producto.UnidadMedida, "—"),
				siNo(producto.Perecedero),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// contenedorRow: datos del contenedor.
func contenedorRow(contenedor *entity.Contenedor) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CONTENEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tipo: %s   |   Estado: %s",
				contenedor.Nombre, contenedor.Tipo, contenedor.Estado,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Motivo", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("Anterior", 1, align.Right),
		h("Nuevo", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableDetailRows: una fila por movimiento, con el saldo corrido recalculado.
// Un saldo negativo se resalta en rojo.
func tableDetailRows(entradas []dominv.EntradaKardex, unidad string) []core.Row {
	result := make([]core.Row, 0, len(entradas))
	for _, e := range entradas {
		mov := e.Movimiento
		nuevoColor := colorGray
		if e.SaldoNegativo {
			nuevoColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mov.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				mov.Tipo,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(mov.Motivo, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Delta.StringFixed(2)+" "+unidad,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				e.StockAnterior.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				e.StockNuevo.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: nuevoColor},
			)),
			col.New(2).Add(text.New(
				"S/ "+e.ValorTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// saldoFinalRow: saldo de cierre tras el último movimiento.
func saldoFinalRow(entradas []dominv.EntradaKardex, unidad string) core.Row {
	saldo := decimal.Zero
	if len(entradas) > 0 {
		saldo = entradas[len(entradas)-1].StockNuevo
	}
	saldoColor := colorPrimary
	if saldo.IsNegative() {
		saldoColor = colorAlert
	}

	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("SALDO FINAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(saldo.StringFixed(2)+" "+unidad, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: saldoColor, Top: 2, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func siNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
