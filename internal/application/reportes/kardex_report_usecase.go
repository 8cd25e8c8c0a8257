package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	dominv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// KardexReportUseCase genera el reporte PDF del kardex de un producto en un
// contenedor: el historial completo con saldo corrido, listo para imprimir.
type KardexReportUseCase struct {
	movRepo        repository.MovimientoRepository
	productoRepo   repository.ProductoRepository
	contenedorRepo repository.ContenedorRepository
	pdfGen         KardexPDFGenerator
}

// NewKardexReportUseCase construye el caso de uso.
func NewKardexReportUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	contenedorRepo repository.ContenedorRepository,
	pdfGen KardexPDFGenerator,
) *KardexReportUseCase {
	return &KardexReportUseCase{
		movRepo:        movRepo,
		productoRepo:   productoRepo,
		contenedorRepo: contenedorRepo,
		pdfGen:         pdfGen,
	}
}

// GeneratePDF arma el kardex y lo renderiza. Devuelve los bytes del PDF.
func (uc *KardexReportUseCase) GeneratePDF(ctx context.Context, productoID, contenedorID string) ([]byte, error) {
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	contenedor, err := uc.contenedorRepo.GetByID(ctx, contenedorID)
	if err != nil {
		return nil, err
	}
	if producto == nil || contenedor == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := uc.movRepo.ListKardex(ctx, productoID, contenedorID)
	if err != nil {
		return nil, err
	}
	entradas := dominv.Acumular(movs, decimal.Zero)

	return uc.pdfGen.GenerateKardexPDF(ctx, producto, contenedor, entradas)
}
