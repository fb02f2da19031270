package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrdenPendiente = "pendiente"
	OrdenRecibida  = "recibida"
	OrdenCancelada = "cancelada"
)

// OrdenCompra es la cabecera de una orden de compra a un proveedor.
// Total es derivado: suma de cantidad × precio_unitario de sus líneas, y se
// fija únicamente cuando todas las líneas se insertaron con éxito.
type OrdenCompra struct {
	ID            int64
	NumeroOrden   string
	ProveedorID   int64
	Estado        string
	Total         decimal.Decimal
	Notas         string
	FechaCreacion time.Time
}

// DetalleOrdenCompra es una línea de la orden; referencia un producto
// existente con la cantidad solicitada y su precio unitario pactado.
type DetalleOrdenCompra struct {
	ID                 int64
	OrdenCompraID      int64
	ProductoID         int64
	CantidadSolicitada int
	PrecioUnitario     decimal.Decimal
}
