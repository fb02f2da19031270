package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
)

// OrdenCompraRepository puerto de persistencia para órdenes de compra.
type OrdenCompraRepository interface {
	CreateCabecera(o *entity.OrdenCompra) error // asigna o.ID
	CreateDetalle(d *entity.DetalleOrdenCompra) error
	UpdateTotal(ordenID int64, total decimal.Decimal) error
	// GetByID devuelve la cabecera y sus líneas; (nil, nil, nil) si no existe.
	GetByID(id int64) (*entity.OrdenCompra, []*entity.DetalleOrdenCompra, error)
	List(limite, offset int) ([]*entity.OrdenCompra, error)
}
