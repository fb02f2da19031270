package inventory

import (
	"context"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// AjustarStockUseCase aplica ajustes de stock de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) y registro inmutable del movimiento.
type AjustarStockUseCase struct {
	txRunner TxRunner
	alertas  AlertaStock
}

// NewAjustarStockUseCase construye el caso de uso.
func NewAjustarStockUseCase(txRunner TxRunner, alertas AlertaStock) *AjustarStockUseCase {
	return &AjustarStockUseCase{txRunner: txRunner, alertas: alertas}
}

// AjustarStockInput entrada para un ajuste de stock. Cantidad es un delta con
// signo; Referencia y Notas son metadatos libres del movimiento.
type AjustarStockInput struct {
	ProductoID       int64
	Cantidad         int
	TipoMovimientoID int64
	Referencia       string
	Notas            string
}

// AjustarStockResult saldos antes y después del ajuste.
type AjustarStockResult struct {
	StockAnterior int
	StockNuevo    int
}

// AjustarStock bloquea la fila del producto, calcula el nuevo saldo y, si no
// queda negativo, actualiza stock_actual y registra el movimiento en la misma
// transacción. Dos ajustes concurrentes sobre el mismo producto se serializan
// por el bloqueo de fila; sobre productos distintos avanzan en paralelo.
// Tras el commit dispara la verificación de stock bajo en una goroutine que
// no afecta al resultado ni a la latencia de la operación.
func (uc *AjustarStockUseCase) AjustarStock(ctx context.Context, in AjustarStockInput) (*AjustarStockResult, error) {
	if in.ProductoID <= 0 || in.TipoMovimientoID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var res AjustarStockResult
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		tipoRepo repository.TipoMovimientoRepository,
	) error {
		// Bloquea la fila del producto durante toda la operación
		producto, err := productoRepo.GetByIDForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		tipo, err := tipoRepo.GetByID(in.TipoMovimientoID)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.ErrInvalidInput
		}

		nuevo := producto.StockActual + in.Cantidad
		if nuevo < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productoRepo.UpdateStock(producto.ID, nuevo); err != nil {
			return err
		}
		mov := &entity.MovimientoInventario{
			ProductoID:       producto.ID,
			TipoMovimientoID: in.TipoMovimientoID,
			Cantidad:         in.Cantidad,
			StockAnterior:    producto.StockActual,
			StockNuevo:       nuevo,
			Referencia:       in.Referencia,
			Notas:            in.Notas,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		res = AjustarStockResult{StockAnterior: producto.StockActual, StockNuevo: nuevo}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// No esperamos a que la notificación se envíe para responder al cliente.
	go uc.alertas.VerificarStockBajo(in.ProductoID)

	return &res, nil
}
