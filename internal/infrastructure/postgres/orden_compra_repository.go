package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación de OrdenCompraRepository sobre PostgreSQL
// (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

// CreateCabecera inserta la cabecera y asigna su ID. Un numero_orden repetido
// devuelve ErrConflict: la restricción UNIQUE impide sobreescrituras.
func (r *OrdenCompraRepo) CreateCabecera(o *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (numero_orden, proveedor_id, estado, total, notas)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_creacion`
	notas := (*string)(nil)
	if o.Notas != "" {
		notas = &o.Notas
	}
	err := r.q.QueryRow(context.Background(), query,
		o.NumeroOrden, o.ProveedorID, o.Estado, o.Total, notas,
	).Scan(&o.ID, &o.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert orden de compra: %w", err)
	}
	return nil
}

// CreateDetalle inserta una línea de la orden.
func (r *OrdenCompraRepo) CreateDetalle(d *entity.DetalleOrdenCompra) error {
	query := `
		INSERT INTO detalle_ordenes_compra (orden_compra_id, producto_id, cantidad_solicitada, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.OrdenCompraID, d.ProductoID, d.CantidadSolicitada, d.PrecioUnitario,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert detalle orden: %w", err)
	}
	return nil
}

// UpdateTotal fija el total calculado de la cabecera.
func (r *OrdenCompraRepo) UpdateTotal(ordenID int64, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ordenes_compra SET total = $2 WHERE id = $1`, ordenID, total)
	if err != nil {
		return fmt.Errorf("update total orden: %w", err)
	}
	return nil
}

// GetByID devuelve la cabecera y sus líneas; (nil, nil, nil) si no existe.
func (r *OrdenCompraRepo) GetByID(id int64) (*entity.OrdenCompra, []*entity.DetalleOrdenCompra, error) {
	var o entity.OrdenCompra
	err := r.q.QueryRow(context.Background(), `
		SELECT id, numero_orden, proveedor_id, estado, total, COALESCE(notas, ''), fecha_creacion
		FROM ordenes_compra WHERE id = $1`, id,
	).Scan(&o.ID, &o.NumeroOrden, &o.ProveedorID, &o.Estado, &o.Total, &o.Notas, &o.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get orden: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, orden_compra_id, producto_id, cantidad_solicitada, precio_unitario
		FROM detalle_ordenes_compra WHERE orden_compra_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get detalles orden: %w", err)
	}
	defer rows.Close()

	var detalles []*entity.DetalleOrdenCompra
	for rows.Next() {
		var d entity.DetalleOrdenCompra
		if err := rows.Scan(&d.ID, &d.OrdenCompraID, &d.ProductoID, &d.CantidadSolicitada, &d.PrecioUnitario); err != nil {
			return nil, nil, fmt.Errorf("scan detalle orden: %w", err)
		}
		detalles = append(detalles, &d)
	}
	return &o, detalles, rows.Err()
}

// List devuelve cabeceras ordenadas de más reciente a más antigua.
func (r *OrdenCompraRepo) List(limite, offset int) ([]*entity.OrdenCompra, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, numero_orden, proveedor_id, estado, total, COALESCE(notas, ''), fecha_creacion
		FROM ordenes_compra ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`, limite, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrdenCompra
	for rows.Next() {
		var o entity.OrdenCompra
		if err := rows.Scan(&o.ID, &o.NumeroOrden, &o.ProveedorID, &o.Estado, &o.Total, &o.Notas, &o.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
