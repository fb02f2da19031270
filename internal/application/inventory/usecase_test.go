package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
)

func productoDePrueba(id int64, codigo string, stock, minimo int) *entity.Producto {
	return &entity.Producto{
		ID:          id,
		Codigo:      codigo,
		Nombre:      "Producto " + codigo,
		StockActual: stock,
		StockMinimo: minimo,
		StockMaximo: 100,
		Activo:      true,
	}
}

// Un ajuste de entrada actualiza el saldo y deja el movimiento con los
// saldos antes/después coherentes.
func TestAjustarStock_EntradaRegistraMovimiento(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "ELE001", 10, 2)})
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	res, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       1,
		Cantidad:         5,
		TipoMovimientoID: 1,
		Referencia:       "COMPRA-099",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.StockAnterior)
	assert.Equal(t, 15, res.StockNuevo)
	assert.Equal(t, 15, store.producto(1).StockActual)

	movs := store.movimientosDe(1)
	require.Len(t, movs, 1)
	assert.Equal(t, 5, movs[0].Cantidad)
	assert.Equal(t, 10, movs[0].StockAnterior)
	assert.Equal(t, 15, movs[0].StockNuevo)
	assert.Equal(t, "COMPRA-099", movs[0].Referencia)
}

// Una salida mayor que el saldo se rechaza sin escribir nada; la misma
// salida reducida sí pasa. Con stock 12: -15 falla, -10 deja 2.
func TestAjustarStock_StockInsuficienteNoEscribe(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "LIB001", 12, 3)})
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       1,
		Cantidad:         -15,
		TipoMovimientoID: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 12, store.producto(1).StockActual, "un ajuste rechazado no debe tocar el saldo")
	assert.Empty(t, store.movimientosDe(1), "un ajuste rechazado no debe registrar movimiento")

	res, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       1,
		Cantidad:         -10,
		TipoMovimientoID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.StockNuevo)
	movs := store.movimientosDe(1)
	require.Len(t, movs, 1)
	assert.Equal(t, -10, movs[0].Cantidad)
}

// Agotar el stock exacto (saldo resultante cero) es válido.
func TestAjustarStock_SaldoCeroEsValido(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "ELE002", 7, 0)})
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	res, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       1,
		Cantidad:         -7,
		TipoMovimientoID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.StockNuevo)
}

func TestAjustarStock_ProductoInexistente(t *testing.T) {
	store := newFakeStore(nil)
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       99,
		Cantidad:         1,
		TipoMovimientoID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAjustarStock_TipoMovimientoInexistente(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "ELE001", 10, 2)})
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID:       1,
		Cantidad:         1,
		TipoMovimientoID: 77,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movimientosDe(1))
}

func TestAjustarStock_EntradaInvalida(t *testing.T) {
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: newFakeStore(nil)}, newFakeAlertas())

	_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{ProductoID: 0, TipoMovimientoID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AjustarStock(context.Background(), inventory.AjustarStockInput{ProductoID: 1, TipoMovimientoID: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ajustes concurrentes sobre el mismo producto se serializan: ninguno se
// pierde y cada movimiento registra saldos consistentes.
func TestAjustarStock_ConcurrenciaSerializada(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "ELE001", 50, 2)})
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, newFakeAlertas())

	const vueltas = 20
	var wg sync.WaitGroup
	for i := 0; i < vueltas; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
				ProductoID: 1, Cantidad: 3, TipoMovimientoID: 1,
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
				ProductoID: 1, Cantidad: -2, TipoMovimientoID: 2,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50+vueltas*3-vueltas*2, store.producto(1).StockActual)

	movs := store.movimientosDe(1)
	require.Len(t, movs, vueltas*2)
	for _, m := range movs {
		assert.Equal(t, m.StockAnterior+m.Cantidad, m.StockNuevo,
			"cada movimiento debe cumplir stock_nuevo = stock_anterior + cantidad")
	}
}

// Un ajuste que deja el producto en o bajo su mínimo dispara la verificación
// de stock bajo sin bloquear la respuesta.
func TestAjustarStock_DisparaVerificacionDeAlerta(t *testing.T) {
	store := newFakeStore([]*entity.Producto{productoDePrueba(1, "ELE001", 5, 4)})
	alertas := newFakeAlertas()
	uc := inventory.NewAjustarStockUseCase(&fakeTxRunner{store: store}, alertas)

	_, err := uc.AjustarStock(context.Background(), inventory.AjustarStockInput{
		ProductoID: 1, Cantidad: -2, TipoMovimientoID: 2,
	})
	require.NoError(t, err)

	select {
	case id := <-alertas.avisos:
		assert.Equal(t, int64(1), id)
	case <-time.After(time.Second):
		t.Fatal("la verificación de stock bajo no se disparó")
	}
}
