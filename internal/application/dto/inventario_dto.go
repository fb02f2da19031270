package dto

// AjustarStockRequest body para PATCH /api/productos/:id/stock.
// Cantidad es un delta con signo: positivo entra, negativo sale.
type AjustarStockRequest struct {
	Cantidad         int    `json:"cantidad"`
	TipoMovimientoID int64  `json:"tipo_movimiento_id"`
	Referencia       string `json:"referencia"`
	Notas            string `json:"notas"`
}

// AjustarStockResponse resultado del ajuste con los saldos antes/después.
type AjustarStockResponse struct {
	Mensaje       string `json:"message"`
	ProductoID    int64  `json:"producto_id"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Movimiento    int    `json:"movimiento"`
}

// SincronizarStockEntrada una entrada del lote de integración externa.
// StockNuevo es puntero para distinguir cero de ausente.
type SincronizarStockEntrada struct {
	Codigo     string `json:"codigo"`
	StockNuevo *int   `json:"stock_nuevo"`
}

// SincronizarStockRequest body para PUT /api/integracion/productos/stock.
type SincronizarStockRequest struct {
	Productos []SincronizarStockEntrada `json:"productos"`
}

// SincronizarStockResponse resultado del lote.
type SincronizarStockResponse struct {
	Mensaje               string `json:"message"`
	ProductosActualizados int    `json:"productos_actualizados"`
}

// TipoMovimientoResponse fila del catálogo de tipos de movimiento.
type TipoMovimientoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}
