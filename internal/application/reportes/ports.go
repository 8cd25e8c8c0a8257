package reportes

import (
	"context"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
)

// KardexPDFGenerator puerto de salida para renderizar el kardex como PDF.
// La implementación concreta vive en infrastructure/pdf.
type KardexPDFGenerator interface {
	GenerateKardexPDF(
		ctx context.Context,
		producto *entity.Producto,
		contenedor *entity.Contenedor,
		entradas []dominv.EntradaKardex,
	) ([]byte, error)
}
