package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo de inventario.
// StockActual solo se modifica a través del libro de movimientos (nunca por
// el CRUD de catálogo); los productos no se eliminan, se desactivan.
type Producto struct {
	ID            int64
	Codigo        string // código único de negocio
	Nombre        string
	Descripcion   string
	PrecioCompra  decimal.Decimal
	PrecioVenta   decimal.Decimal
	StockActual   int
	StockMinimo   int
	StockMaximo   int
	CategoriaID   *int64
	ProveedorID   *int64
	Activo        bool
	FechaCreacion time.Time
}

// EstadoStock clasifica el nivel de stock frente a los umbrales del producto.
// "bajo" si está en o por debajo del mínimo, "alto" si supera el 80% del
// máximo, "normal" en el resto de casos.
func (p *Producto) EstadoStock() string {
	switch {
	case p.StockActual <= p.StockMinimo:
		return "bajo"
	case float64(p.StockActual) > float64(p.StockMaximo)*0.8:
		return "alto"
	default:
		return "normal"
	}
}
