package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventario/internal/application/reports"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

type fakeReporteRepo struct {
	stockBajo []*repository.ProductoStockBajo
	periodo   []*repository.MovimientoPeriodoFila
}

func (f *fakeReporteRepo) Estadisticas(context.Context) (*repository.EstadisticasInventario, error) {
	return &repository.EstadisticasInventario{
		ProductosActivos:      12,
		ProductosStockBajo:    2,
		ValorInventarioCompra: decimal.RequireFromString("1500.50"),
		ValorInventarioVenta:  decimal.RequireFromString("2100.75"),
	}, nil
}

func (f *fakeReporteRepo) MovimientosRecientes(_ context.Context, limite int) ([]*repository.MovimientoReciente, error) {
	return []*repository.MovimientoReciente{
		{Producto: "Laptop HP Pavilion", Cantidad: 5, TipoMovimiento: "Compra"},
	}, nil
}

func (f *fakeReporteRepo) ProductosTop(_ context.Context, dias, limite int) ([]*repository.ProductoTop, error) {
	return []*repository.ProductoTop{
		{Nombre: "Mouse inalámbrico", CantidadMovida: 30, Movimientos: 4},
	}, nil
}

func (f *fakeReporteRepo) StockBajo(context.Context) ([]*repository.ProductoStockBajo, error) {
	return f.stockBajo, nil
}

func (f *fakeReporteRepo) ValorInventario(context.Context) ([]*repository.ValorInventarioFila, error) {
	return nil, nil
}

func (f *fakeReporteRepo) MovimientosPorPeriodo(_ context.Context, desde, hasta time.Time) ([]*repository.MovimientoPeriodoFila, error) {
	return f.periodo, nil
}

type fakePDFGenerator struct {
	filas []*repository.ProductoStockBajo
}

func (g *fakePDFGenerator) Generar(_ context.Context, filas []*repository.ProductoStockBajo) ([]byte, error) {
	g.filas = filas
	return []byte("%PDF-1.7"), nil
}

func TestDashboard_ArmaPanelCompleto(t *testing.T) {
	uc := reports.NewReporteUseCase(&fakeReporteRepo{}, &fakePDFGenerator{})

	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Estadisticas.ProductosActivos)
	assert.Equal(t, 2, res.Estadisticas.ProductosStockBajo)
	require.Len(t, res.MovimientosRecientes, 1)
	assert.Equal(t, "Laptop HP Pavilion", res.MovimientosRecientes[0].Producto)
	require.Len(t, res.ProductosTop, 1)
	assert.Equal(t, 30, res.ProductosTop[0].CantidadMovida)
}

func TestStockBajoPDF_GeneraConLasFilasDelReporte(t *testing.T) {
	filas := []*repository.ProductoStockBajo{
		{ProductoID: 1, Codigo: "LIB001", Nombre: "Novela", StockActual: 2, StockMinimo: 5, UnidadesFaltantes: 3},
	}
	pdf := &fakePDFGenerator{}
	uc := reports.NewReporteUseCase(&fakeReporteRepo{stockBajo: filas}, pdf)

	doc, err := uc.StockBajoPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Equal(t, filas, pdf.filas)
}

func TestMovimientosPorPeriodo_RangoInvalido(t *testing.T) {
	uc := reports.NewReporteUseCase(&fakeReporteRepo{}, &fakePDFGenerator{})
	desde := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.MovimientosPorPeriodo(context.Background(), time.Time{}, hasta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.MovimientosPorPeriodo(context.Background(), desde, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.MovimientosPorPeriodo(context.Background(), hasta, desde)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimientosPorPeriodo_FormateaFechas(t *testing.T) {
	repo := &fakeReporteRepo{periodo: []*repository.MovimientoPeriodoFila{
		{
			Fecha:               time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			TipoMovimiento:      "Venta",
			Tipo:                "salida",
			CantidadMovimientos: 3,
			TotalUnidades:       9,
		},
	}}
	uc := reports.NewReporteUseCase(repo, &fakePDFGenerator{})

	res, err := uc.MovimientosPorPeriodo(context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "2026-08-15", res[0].Fecha)
	assert.Equal(t, "salida", res[0].Tipo)
	assert.Equal(t, 9, res[0].TotalUnidades)
}
