package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  int             `json:"stock_minimo"`
	StockMaximo  int             `json:"stock_maximo"`
	CategoriaID  *int64          `json:"categoria_id"`
	ProveedorID  *int64          `json:"proveedor_id"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id.
// No permite tocar stock_actual: el stock solo cambia vía movimientos.
type ActualizarProductoRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockMinimo  int             `json:"stock_minimo"`
	StockMaximo  int             `json:"stock_maximo"`
	CategoriaID  *int64          `json:"categoria_id"`
	ProveedorID  *int64          `json:"proveedor_id"`
}

// ListarProductosQuery filtros del listado (query string).
type ListarProductosQuery struct {
	Categoria string `query:"categoria"`
	Proveedor string `query:"proveedor"`
	StockBajo string `query:"stock_bajo"`
	Activo    string `query:"activo"`
	Pagina    int    `query:"pagina"`
	Limite    int    `query:"limite"`
	Ordenar   string `query:"ordenar"`
	Busqueda  string `query:"busqueda"`
}

// ProductoResponse representación HTTP de un producto.
type ProductoResponse struct {
	ID           int64           `json:"id"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  int             `json:"stock_minimo"`
	StockMaximo  int             `json:"stock_maximo"`
	Categoria    string          `json:"categoria,omitempty"`
	Proveedor    string          `json:"proveedor,omitempty"`
	Activo       bool            `json:"activo"`
	EstadoStock  string          `json:"estado_stock"`
}

// ProductoListaResponse página de productos.
type ProductoListaResponse struct {
	Productos  []ProductoResponse `json:"productos"`
	Paginacion Paginacion         `json:"paginacion"`
}

// MovimientoResponse movimiento en el detalle de producto.
type MovimientoResponse struct {
	Cantidad        int       `json:"cantidad"`
	FechaMovimiento time.Time `json:"fecha_movimiento"`
	TipoMovimiento  string    `json:"tipo_movimiento"`
	Tipo            string    `json:"tipo"`
	Referencia      string    `json:"referencia,omitempty"`
	Notas           string    `json:"notas,omitempty"`
}

// ProductoDetalleResponse producto con sus últimos movimientos.
type ProductoDetalleResponse struct {
	Producto             ProductoResponse     `json:"producto"`
	MovimientosRecientes []MovimientoResponse `json:"movimientos_recientes"`
}
