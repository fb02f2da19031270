package repository

import "github.com/jhoicas/sistema-inventario/internal/domain/entity"

// MovimientoDetallado movimiento con el nombre y la clase de su tipo.
type MovimientoDetallado struct {
	Movimiento entity.MovimientoInventario
	TipoNombre string
	TipoClase  string // entrada, salida, ajuste
}

// MovimientoRepository puerto del libro de movimientos. Los movimientos son
// inmutables: solo se insertan y se consultan.
type MovimientoRepository interface {
	Create(m *entity.MovimientoInventario) error // asigna m.ID
	ListByProducto(productoID int64, limite int) ([]*MovimientoDetallado, error)
}

// TipoMovimientoRepository datos de referencia de tipos de movimiento.
type TipoMovimientoRepository interface {
	GetByID(id int64) (*entity.TipoMovimiento, error)
	List() ([]*entity.TipoMovimiento, error)
}
