package entity

import "time"

// Clases de tipo de movimiento (columna tipos_movimiento.tipo).
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
	TipoAjuste  = "ajuste"
)

// TipoMovimiento es la tabla de referencia que clasifica cada movimiento.
// Se siembra una vez y el núcleo la trata como datos inmutables.
type TipoMovimiento struct {
	ID     int64
	Nombre string
	Tipo   string // entrada, salida, ajuste
}

// MovimientoInventario es el registro inmutable del libro de movimientos.
// Invariante: StockNuevo = StockAnterior + Cantidad. Solo lo crea el libro
// de stock; nunca se actualiza ni se borra.
type MovimientoInventario struct {
	ID               int64
	ProductoID       int64
	TipoMovimientoID int64
	Cantidad         int // positivo aumenta, negativo disminuye
	StockAnterior    int
	StockNuevo       int
	Referencia       string
	Notas            string
	FechaMovimiento  time.Time
}
