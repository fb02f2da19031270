package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenLineaRequest línea de una orden de compra nueva.
type OrdenLineaRequest struct {
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CrearOrdenRequest body para POST /api/ordenes-compra.
type CrearOrdenRequest struct {
	ProveedorID int64               `json:"proveedor_id"`
	Productos   []OrdenLineaRequest `json:"productos"`
	Notas       string              `json:"notas"`
}

// CrearOrdenResponse cabecera recién creada con su total calculado.
type CrearOrdenResponse struct {
	Mensaje     string          `json:"message"`
	OrdenID     int64           `json:"orden_id"`
	NumeroOrden string          `json:"numero_orden"`
	Total       decimal.Decimal `json:"total"`
}

// OrdenDetalleResponse línea de orden en lecturas.
type OrdenDetalleResponse struct {
	ProductoID         int64           `json:"producto_id"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario"`
}

// OrdenResponse orden de compra con sus líneas.
type OrdenResponse struct {
	ID            int64                  `json:"id"`
	NumeroOrden   string                 `json:"numero_orden"`
	ProveedorID   int64                  `json:"proveedor_id"`
	Estado        string                 `json:"estado"`
	Total         decimal.Decimal        `json:"total"`
	Notas         string                 `json:"notas,omitempty"`
	FechaCreacion time.Time              `json:"fecha_creacion"`
	Detalles      []OrdenDetalleResponse `json:"detalles,omitempty"`
}
