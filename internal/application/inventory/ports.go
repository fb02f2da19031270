package inventory

import (
	"context"

	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de stock:
// o se persisten el saldo y el movimiento, o ninguno de los dos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		tipoRepo repository.TipoMovimientoRepository,
	) error) error
}

// AlertaStock dispara la verificación de stock bajo tras un commit.
// Es best-effort: nunca devuelve error ni afecta a la operación que la lanzó.
type AlertaStock interface {
	VerificarStockBajo(productoID int64)
}
