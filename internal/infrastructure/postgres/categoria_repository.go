package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría y asigna su ID.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO categorias (nombre, descripcion, activa)
		VALUES ($1, $2, $3) RETURNING id`,
		c.Nombre, c.Descripcion, c.Activa,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// ListConResumen lista categorías activas con el conteo y stock total de sus
// productos activos.
func (r *CategoriaRepo) ListConResumen() ([]*repository.CategoriaResumen, error) {
	query := `
		SELECT c.id, c.nombre, COALESCE(c.descripcion, ''), c.activa,
		       COUNT(p.id) AS productos_count,
		       COALESCE(SUM(p.stock_actual), 0) AS stock_total
		FROM categorias c
		LEFT JOIN productos p ON c.id = p.categoria_id AND p.activo = true
		WHERE c.activa = true
		GROUP BY c.id, c.nombre, c.descripcion, c.activa
		ORDER BY c.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*repository.CategoriaResumen
	for rows.Next() {
		var f repository.CategoriaResumen
		if err := rows.Scan(&f.Categoria.ID, &f.Categoria.Nombre, &f.Categoria.Descripcion,
			&f.Categoria.Activa, &f.ProductosCount, &f.StockTotal); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
