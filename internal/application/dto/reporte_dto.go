package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadisticasResponse agregados generales del dashboard.
type EstadisticasResponse struct {
	ProductosActivos      int             `json:"productos_activos"`
	ProductosStockBajo    int             `json:"productos_stock_bajo"`
	ValorInventarioCompra decimal.Decimal `json:"valor_inventario_compra"`
	ValorInventarioVenta  decimal.Decimal `json:"valor_inventario_venta"`
}

// MovimientoRecienteResponse fila de movimientos recientes del dashboard.
type MovimientoRecienteResponse struct {
	FechaMovimiento time.Time `json:"fecha_movimiento"`
	Producto        string    `json:"producto"`
	Cantidad        int       `json:"cantidad"`
	TipoMovimiento  string    `json:"tipo_movimiento"`
	Referencia      string    `json:"referencia,omitempty"`
}

// ProductoTopResponse producto con más salidas en el período.
type ProductoTopResponse struct {
	Nombre         string `json:"nombre"`
	CantidadMovida int    `json:"cantidad_movida"`
	Movimientos    int    `json:"movimientos"`
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Estadisticas         EstadisticasResponse         `json:"estadisticas"`
	MovimientosRecientes []MovimientoRecienteResponse `json:"movimientos_recientes"`
	ProductosTop         []ProductoTopResponse        `json:"productos_top"`
}

// StockBajoResponse fila del reporte de stock bajo.
type StockBajoResponse struct {
	ProductoID        int64  `json:"producto_id"`
	Codigo            string `json:"codigo"`
	Nombre            string `json:"nombre"`
	StockActual       int    `json:"stock_actual"`
	StockMinimo       int    `json:"stock_minimo"`
	UnidadesFaltantes int    `json:"unidades_faltantes"`
	Categoria         string `json:"categoria,omitempty"`
	Proveedor         string `json:"proveedor,omitempty"`
	ContactoProveedor string `json:"contacto_proveedor,omitempty"`
}

// ValorInventarioResponse fila del reporte de valor de inventario.
type ValorInventarioResponse struct {
	Concepto          string          `json:"concepto"`
	ValorCompra       decimal.Decimal `json:"valor_compra"`
	ValorVenta        decimal.Decimal `json:"valor_venta"`
	GananciaPotencial decimal.Decimal `json:"ganancia_potencial"`
}

// MovimientoPeriodoResponse agregado diario de movimientos por tipo.
type MovimientoPeriodoResponse struct {
	Fecha               string `json:"fecha"`
	TipoMovimiento      string `json:"tipo_movimiento"`
	Tipo                string `json:"tipo"`
	CantidadMovimientos int    `json:"cantidad_movimientos"`
	TotalUnidades       int    `json:"total_unidades"`
}
