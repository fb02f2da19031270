package catalog

import (
	"context"

	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. La creación
// de producto lo usa para insertar el producto y su movimiento de stock
// inicial como una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		tipoRepo repository.TipoMovimientoRepository,
	) error) error
}

// AlertaStock dispara la verificación de stock bajo tras crear un producto.
type AlertaStock interface {
	VerificarStockBajo(productoID int64)
}
