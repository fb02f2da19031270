package inventory

import (
	"context"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// Tipo de movimiento sembrado "Ajuste inventario", usado por la integración
// externa y por el stock inicial al crear productos.
const TipoMovimientoAjuste int64 = 4

// ReferenciaIntegracion marca los movimientos generados por el lote de
// sincronización externa.
const ReferenciaIntegracion = "Integración Externa"

// SincronizarStockUseCase aplica en bloque los niveles absolutos de stock que
// reporta un sistema externo, registrando un movimiento por producto.
type SincronizarStockUseCase struct {
	txRunner TxRunner
}

// NewSincronizarStockUseCase construye el caso de uso.
func NewSincronizarStockUseCase(txRunner TxRunner) *SincronizarStockUseCase {
	return &SincronizarStockUseCase{txRunner: txRunner}
}

// SincronizarEntrada nivel absoluto reportado para un código de producto.
// StockNuevo es puntero para distinguir cero de ausente.
type SincronizarEntrada struct {
	Codigo     string
	StockNuevo *int
}

// Sincronizar procesa el lote completo en una única transacción: todas las
// entradas se aplican o ninguna. Para cada entrada bloquea el producto por
// código, fija stock_actual al valor reportado y registra un movimiento con
// el delta resultante. A diferencia del ajuste primario, aquí no se rechaza
// un delta negativo: el sistema externo reporta un objetivo absoluto y se
// asume autoritativo. Devuelve el número de productos actualizados solo si
// el lote completo tuvo éxito.
func (uc *SincronizarStockUseCase) Sincronizar(ctx context.Context, entradas []SincronizarEntrada) (int, error) {
	if len(entradas) == 0 {
		return 0, domain.ErrInvalidInput
	}
	// Valida la forma de todo el lote antes de escribir nada
	for _, e := range entradas {
		if e.Codigo == "" || e.StockNuevo == nil {
			return 0, domain.ErrInvalidInput
		}
	}

	actualizados := 0
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		_ repository.TipoMovimientoRepository,
	) error {
		for _, e := range entradas {
			producto, err := productoRepo.GetByCodigoForUpdate(e.Codigo)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrProductoNotFound
			}

			nuevo := *e.StockNuevo
			delta := nuevo - producto.StockActual

			if err := productoRepo.UpdateStock(producto.ID, nuevo); err != nil {
				return err
			}
			mov := &entity.MovimientoInventario{
				ProductoID:       producto.ID,
				TipoMovimientoID: TipoMovimientoAjuste,
				Cantidad:         delta,
				StockAnterior:    producto.StockActual,
				StockNuevo:       nuevo,
				Referencia:       ReferenciaIntegracion,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			actualizados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return actualizados, nil
}
