package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)

// TipoMovimientoRepo lectura de la tabla de referencia tipos_movimiento.
type TipoMovimientoRepo struct {
	q Querier
}

// NewTipoMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoMovimientoRepository(q Querier) *TipoMovimientoRepo {
	return &TipoMovimientoRepo{q: q}
}

// GetByID obtiene un tipo de movimiento; (nil, nil) si no existe.
func (r *TipoMovimientoRepo) GetByID(id int64) (*entity.TipoMovimiento, error) {
	var t entity.TipoMovimiento
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, tipo FROM tipos_movimiento WHERE id = $1`, id,
	).Scan(&t.ID, &t.Nombre, &t.Tipo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo movimiento: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tipos de movimiento.
func (r *TipoMovimientoRepo) List() ([]*entity.TipoMovimiento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, tipo FROM tipos_movimiento ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tipos movimiento: %w", err)
	}
	defer rows.Close()

	var list []*entity.TipoMovimiento
	for rows.Next() {
		var t entity.TipoMovimiento
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Tipo); err != nil {
			return nil, fmt.Errorf("scan tipo movimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
