package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EstadisticasInventario agregados generales del dashboard.
type EstadisticasInventario struct {
	ProductosActivos      int
	ProductosStockBajo    int
	ValorInventarioCompra decimal.Decimal
	ValorInventarioVenta  decimal.Decimal
}

// MovimientoReciente fila del panel de movimientos recientes.
type MovimientoReciente struct {
	FechaMovimiento time.Time
	Producto        string
	Cantidad        int
	TipoMovimiento  string
	Referencia      string
}

// ProductoTop producto con más unidades de salida en el período.
type ProductoTop struct {
	Nombre         string
	CantidadMovida int
	Movimientos    int
}

// ProductoStockBajo fila del reporte de stock bajo, con el contacto del
// proveedor para facilitar la reposición.
type ProductoStockBajo struct {
	ProductoID        int64
	Codigo            string
	Nombre            string
	StockActual       int
	StockMinimo       int
	UnidadesFaltantes int
	Categoria         string
	Proveedor         string
	ContactoProveedor string
}

// ValorInventarioFila fila del reporte de valor de inventario (total, por
// categoría o por proveedor).
type ValorInventarioFila struct {
	Concepto          string
	ValorCompra       decimal.Decimal
	ValorVenta        decimal.Decimal
	GananciaPotencial decimal.Decimal
}

// MovimientoPeriodoFila agregado diario de movimientos por tipo.
type MovimientoPeriodoFila struct {
	Fecha               time.Time
	TipoMovimiento      string
	Tipo                string
	CantidadMovimientos int
	TotalUnidades       int
}

// ReporteRepository consultas de solo lectura para dashboard y reportes.
type ReporteRepository interface {
	Estadisticas(ctx context.Context) (*EstadisticasInventario, error)
	MovimientosRecientes(ctx context.Context, limite int) ([]*MovimientoReciente, error)
	ProductosTop(ctx context.Context, dias, limite int) ([]*ProductoTop, error)
	StockBajo(ctx context.Context) ([]*ProductoStockBajo, error)
	ValorInventario(ctx context.Context) ([]*ValorInventarioFila, error)
	MovimientosPorPeriodo(ctx context.Context, desde, hasta time.Time) ([]*MovimientoPeriodoFila, error)
}
