package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// OrdenCompraUseCase crea y consulta órdenes de compra. La creación es
// atómica: cabecera y líneas se insertan en una sola transacción y el total
// se calcula en el servidor, nunca lo aporta el cliente.
type OrdenCompraUseCase struct {
	txRunner  TxRunner
	ordenRepo repository.OrdenCompraRepository
}

// NewOrdenCompraUseCase construye el caso de uso.
func NewOrdenCompraUseCase(txRunner TxRunner, ordenRepo repository.OrdenCompraRepository) *OrdenCompraUseCase {
	return &OrdenCompraUseCase{txRunner: txRunner, ordenRepo: ordenRepo}
}

// LineaInput línea solicitada de la orden.
type LineaInput struct {
	ProductoID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// CrearOrdenInput entrada para crear una orden de compra.
type CrearOrdenInput struct {
	ProveedorID int64
	Lineas      []LineaInput
	Notas       string
}

// CrearOrdenResult orden creada con su total calculado.
type CrearOrdenResult struct {
	OrdenID     int64
	NumeroOrden string
	Total       decimal.Decimal
}

// Crear valida la entrada completa antes de escribir nada y después, en una
// transacción: inserta la cabecera en estado pendiente con total provisional
// cero, inserta cada línea en orden verificando que su producto exista, y
// fija el total acumulado en la cabecera. Cualquier fallo revierte todo; una
// orden nunca queda a medio poblar.
func (uc *OrdenCompraUseCase) Crear(ctx context.Context, in CrearOrdenInput) (*CrearOrdenResult, error) {
	if in.ProveedorID <= 0 || len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lineas {
		if l.ProductoID <= 0 || l.Cantidad <= 0 || !l.PrecioUnitario.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	orden := &entity.OrdenCompra{
		NumeroOrden: nuevoNumeroOrden(),
		ProveedorID: in.ProveedorID,
		Estado:      entity.OrdenPendiente,
		Total:       decimal.Zero,
		Notas:       in.Notas,
	}

	var res CrearOrdenResult
	err := uc.txRunner.RunOrden(ctx, func(
		ordenRepo repository.OrdenCompraRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := ordenRepo.CreateCabecera(orden); err != nil {
			return err
		}

		total := decimal.Zero
		for _, l := range in.Lineas {
			producto, err := productoRepo.GetByID(l.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrProductoNotFound
			}
			detalle := &entity.DetalleOrdenCompra{
				OrdenCompraID:      orden.ID,
				ProductoID:         l.ProductoID,
				CantidadSolicitada: l.Cantidad,
				PrecioUnitario:     l.PrecioUnitario,
			}
			if err := ordenRepo.CreateDetalle(detalle); err != nil {
				return err
			}
			total = total.Add(l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad))))
		}

		if err := ordenRepo.UpdateTotal(orden.ID, total); err != nil {
			return err
		}
		res = CrearOrdenResult{OrdenID: orden.ID, NumeroOrden: orden.NumeroOrden, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Obtener devuelve una orden con sus líneas; nil si no existe.
func (uc *OrdenCompraUseCase) Obtener(id int64) (*entity.OrdenCompra, []*entity.DetalleOrdenCompra, error) {
	return uc.ordenRepo.GetByID(id)
}

// Listar devuelve las órdenes más recientes.
func (uc *OrdenCompraUseCase) Listar(limite, offset int) ([]*entity.OrdenCompra, error) {
	if limite <= 0 || limite > 100 {
		limite = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.ordenRepo.List(limite, offset)
}

// nuevoNumeroOrden genera un número derivado del tiempo con un sufijo
// aleatorio; la restricción UNIQUE de numero_orden garantiza que una colisión
// jamás sobreescriba otra orden en silencio.
func nuevoNumeroOrden() string {
	return fmt.Sprintf("OC-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
