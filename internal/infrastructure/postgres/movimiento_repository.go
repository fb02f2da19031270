package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y consulta: los movimientos son
// inmutables.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de inventario y asigna su ID.
func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario
		(producto_id, tipo_movimiento_id, cantidad, stock_anterior, stock_nuevo, referencia, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_movimiento`
	referencia := (*string)(nil)
	if m.Referencia != "" {
		referencia = &m.Referencia
	}
	notas := (*string)(nil)
	if m.Notas != "" {
		notas = &m.Notas
	}
	err := r.q.QueryRow(context.Background(), query,
		m.ProductoID, m.TipoMovimientoID, m.Cantidad, m.StockAnterior, m.StockNuevo,
		referencia, notas,
	).Scan(&m.ID, &m.FechaMovimiento)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByProducto lista los últimos movimientos de un producto con el nombre
// y la clase de su tipo.
func (r *MovimientoRepo) ListByProducto(productoID int64, limite int) ([]*repository.MovimientoDetallado, error) {
	query := `
		SELECT mi.id, mi.producto_id, mi.tipo_movimiento_id, mi.cantidad,
		       mi.stock_anterior, mi.stock_nuevo,
		       COALESCE(mi.referencia, ''), COALESCE(mi.notas, ''), mi.fecha_movimiento,
		       tm.nombre, tm.tipo
		FROM movimientos_inventario mi
		JOIN tipos_movimiento tm ON mi.tipo_movimiento_id = tm.id
		WHERE mi.producto_id = $1
		ORDER BY mi.fecha_movimiento DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productoID, limite)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovimientoDetallado
	for rows.Next() {
		var d repository.MovimientoDetallado
		m := &d.Movimiento
		if err := rows.Scan(
			&m.ID, &m.ProductoID, &m.TipoMovimientoID, &m.Cantidad,
			&m.StockAnterior, &m.StockNuevo, &m.Referencia, &m.Notas, &m.FechaMovimiento,
			&d.TipoNombre, &d.TipoClase,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
