package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
)

// ProveedorResumen proveedor activo con agregados de sus productos activos.
type ProveedorResumen struct {
	Proveedor              entity.Proveedor
	ProductosSuministrados int
	PrecioPromedioCompra   decimal.Decimal
}

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error // asigna p.ID
	GetByID(id int64) (*entity.Proveedor, error)
	ListConResumen() ([]*ProveedorResumen, error)
}
