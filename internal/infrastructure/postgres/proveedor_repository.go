package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un proveedor y asigna su ID.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO proveedores (nombre, contacto, email, telefono, activo)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Nombre, p.Contacto, p.Email, p.Telefono, p.Activo,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *ProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nombre, COALESCE(contacto, ''), COALESCE(email, ''),
		       COALESCE(telefono, ''), activo
		FROM proveedores WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Email, &p.Telefono, &p.Activo)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get proveedor %d: %w", id, err)
	}
	return &p, nil
}

// ListConResumen lista proveedores activos con el conteo de productos activos
// que suministran y su precio de compra promedio.
func (r *ProveedorRepo) ListConResumen() ([]*repository.ProveedorResumen, error) {
	query := `
		SELECT pr.id, pr.nombre, COALESCE(pr.contacto, ''), COALESCE(pr.email, ''),
		       COALESCE(pr.telefono, ''), pr.activo,
		       COUNT(p.id) AS productos_suministrados,
		       COALESCE(AVG(p.precio_compra), 0) AS precio_promedio_compra
		FROM proveedores pr
		LEFT JOIN productos p ON pr.id = p.proveedor_id AND p.activo = true
		WHERE pr.activo = true
		GROUP BY pr.id, pr.nombre, pr.contacto, pr.email, pr.telefono, pr.activo
		ORDER BY pr.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var list []*repository.ProveedorResumen
	for rows.Next() {
		var f repository.ProveedorResumen
		if err := rows.Scan(&f.Proveedor.ID, &f.Proveedor.Nombre, &f.Proveedor.Contacto,
			&f.Proveedor.Email, &f.Proveedor.Telefono, &f.Proveedor.Activo,
			&f.ProductosSuministrados, &f.PrecioPromedioCompra); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
