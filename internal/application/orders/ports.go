package orders

import (
	"context"

	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de órdenes atados a esa tx. Cualquier error en la función
// revierte la cabecera y todas las líneas insertadas en esa llamada.
type TxRunner interface {
	RunOrden(ctx context.Context, fn func(
		ordenRepo repository.OrdenCompraRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
