package reports

import (
	"context"
	"time"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// StockBajoPDFGenerator genera el PDF del reporte de stock bajo.
type StockBajoPDFGenerator interface {
	Generar(ctx context.Context, filas []*repository.ProductoStockBajo) ([]byte, error)
}

// ReporteUseCase consultas de solo lectura para dashboard y reportes.
type ReporteUseCase struct {
	repo repository.ReporteRepository
	pdf  StockBajoPDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository, pdf StockBajoPDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, pdf: pdf}
}

// Dashboard arma el panel: estadísticas generales, movimientos recientes y
// productos con más salidas de los últimos 30 días.
func (uc *ReporteUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	recientes, err := uc.repo.MovimientosRecientes(ctx, 10)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.ProductosTop(ctx, 30, 5)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		Estadisticas: dto.EstadisticasResponse{
			ProductosActivos:      stats.ProductosActivos,
			ProductosStockBajo:    stats.ProductosStockBajo,
			ValorInventarioCompra: stats.ValorInventarioCompra,
			ValorInventarioVenta:  stats.ValorInventarioVenta,
		},
		MovimientosRecientes: make([]dto.MovimientoRecienteResponse, 0, len(recientes)),
		ProductosTop:         make([]dto.ProductoTopResponse, 0, len(top)),
	}
	for _, m := range recientes {
		out.MovimientosRecientes = append(out.MovimientosRecientes, dto.MovimientoRecienteResponse{
			FechaMovimiento: m.FechaMovimiento,
			Producto:        m.Producto,
			Cantidad:        m.Cantidad,
			TipoMovimiento:  m.TipoMovimiento,
			Referencia:      m.Referencia,
		})
	}
	for _, p := range top {
		out.ProductosTop = append(out.ProductosTop, dto.ProductoTopResponse{
			Nombre:         p.Nombre,
			CantidadMovida: p.CantidadMovida,
			Movimientos:    p.Movimientos,
		})
	}
	return out, nil
}

// StockBajo lista los productos activos en o por debajo de su stock mínimo.
func (uc *ReporteUseCase) StockBajo(ctx context.Context) ([]dto.StockBajoResponse, error) {
	filas, err := uc.repo.StockBajo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockBajoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.StockBajoResponse{
			ProductoID:        f.ProductoID,
			Codigo:            f.Codigo,
			Nombre:            f.Nombre,
			StockActual:       f.StockActual,
			StockMinimo:       f.StockMinimo,
			UnidadesFaltantes: f.UnidadesFaltantes,
			Categoria:         f.Categoria,
			Proveedor:         f.Proveedor,
			ContactoProveedor: f.ContactoProveedor,
		})
	}
	return out, nil
}

// StockBajoPDF genera el reporte de stock bajo como documento PDF.
func (uc *ReporteUseCase) StockBajoPDF(ctx context.Context) ([]byte, error) {
	filas, err := uc.repo.StockBajo(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generar(ctx, filas)
}

// ValorInventario devuelve el valor del inventario total, por categoría y por
// proveedor.
func (uc *ReporteUseCase) ValorInventario(ctx context.Context) ([]dto.ValorInventarioResponse, error) {
	filas, err := uc.repo.ValorInventario(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ValorInventarioResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ValorInventarioResponse{
			Concepto:          f.Concepto,
			ValorCompra:       f.ValorCompra,
			ValorVenta:        f.ValorVenta,
			GananciaPotencial: f.GananciaPotencial,
		})
	}
	return out, nil
}

// MovimientosPorPeriodo agrega los movimientos por día y tipo en el rango.
func (uc *ReporteUseCase) MovimientosPorPeriodo(ctx context.Context, desde, hasta time.Time) ([]dto.MovimientoPeriodoResponse, error) {
	if desde.IsZero() || hasta.IsZero() || hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	filas, err := uc.repo.MovimientosPorPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoPeriodoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.MovimientoPeriodoResponse{
			Fecha:               f.Fecha.Format("2006-01-02"),
			TipoMovimiento:      f.TipoMovimiento,
			Tipo:                f.Tipo,
			CantidadMovimientos: f.CantidadMovimientos,
			TotalUnidades:       f.TotalUnidades,
		})
	}
	return out, nil
}
