package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable
// con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, codigo, nombre, descripcion, precio_compra, precio_venta,
		stock_actual, stock_minimo, stock_maximo, categoria_id, proveedor_id, activo, fecha_creacion`

// Create persiste un producto nuevo y asigna su ID.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos
		(codigo, nombre, descripcion, precio_compra, precio_venta, stock_actual, stock_minimo, stock_maximo, categoria_id, proveedor_id, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		p.Codigo, p.Nombre, p.Descripcion, p.PrecioCompra, p.PrecioVenta,
		p.StockActual, p.StockMinimo, p.StockMaximo, p.CategoriaID, p.ProveedorID, p.Activo,
	).Scan(&p.ID, &p.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
		&p.StockActual, &p.StockMinimo, &p.StockMaximo, &p.CategoriaID, &p.ProveedorID,
		&p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := r.scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa los ajustes concurrentes sobre el mismo producto.
func (r *ProductoRepo) GetByIDForUpdate(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	p, err := r.scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get producto for update: %w", err)
	}
	return p, nil
}

// GetByCodigo obtiene un producto por su código de negocio.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1`
	p, err := r.scanProducto(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		return nil, fmt.Errorf("get producto by codigo: %w", err)
	}
	return p, nil
}

// GetByCodigoForUpdate obtiene un producto por código bloqueando su fila.
func (r *ProductoRepo) GetByCodigoForUpdate(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1 FOR UPDATE`
	p, err := r.scanProducto(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		return nil, fmt.Errorf("get producto by codigo for update: %w", err)
	}
	return p, nil
}

// UpdateStock fija stock_actual. Reservado al libro de movimientos.
func (r *ProductoRepo) UpdateStock(id int64, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Update actualiza campos descriptivos, precios y umbrales (nunca el stock).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio_compra = $4, precio_venta = $5,
		    stock_minimo = $6, stock_maximo = $7, categoria_id = $8, proveedor_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.PrecioCompra, p.PrecioVenta,
		p.StockMinimo, p.StockMaximo, p.CategoriaID, p.ProveedorID,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Deactivate marca el producto como inactivo (no hay borrado físico).
func (r *ProductoRepo) Deactivate(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate producto: %w", err)
	}
	return nil
}

// Ordenamientos permitidos del listado (clave de query -> columna real).
var ordenesValidos = map[string]string{
	"nombre":    "p.nombre",
	"precio":    "p.precio_venta",
	"stock":     "p.stock_actual",
	"categoria": "c.nombre",
}

// filtroSQL construye la cláusula WHERE del listado con parámetros posicionales.
func filtroSQL(f repository.ProductoFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any
	pos := 1

	if f.Activo != nil {
		where += fmt.Sprintf(" AND p.activo = $%d", pos)
		args = append(args, *f.Activo)
		pos++
	}
	if f.Categoria != "" {
		where += fmt.Sprintf(" AND c.nombre = $%d", pos)
		args = append(args, f.Categoria)
		pos++
	}
	if f.Proveedor != "" {
		where += fmt.Sprintf(" AND pr.nombre = $%d", pos)
		args = append(args, f.Proveedor)
		pos++
	}
	if f.StockBajo {
		where += " AND p.stock_actual <= p.stock_minimo"
	}
	if f.Busqueda != "" {
		where += fmt.Sprintf(" AND (p.nombre ILIKE $%d OR p.descripcion ILIKE $%d OR p.codigo ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+f.Busqueda+"%")
		pos++
	}
	return where, args
}

// List devuelve una página del catálogo con los nombres de categoría y
// proveedor resueltos.
func (r *ProductoRepo) List(f repository.ProductoFilter) ([]*repository.ProductoListado, error) {
	where, args := filtroSQL(f)

	orden, ok := ordenesValidos[f.Ordenar]
	if !ok {
		orden = "p.nombre"
	}

	query := `
		SELECT p.id, p.codigo, p.nombre, p.descripcion, p.precio_compra, p.precio_venta,
		       p.stock_actual, p.stock_minimo, p.stock_maximo, p.categoria_id, p.proveedor_id,
		       p.activo, p.fecha_creacion,
		       COALESCE(c.nombre, '') AS categoria,
		       COALESCE(pr.nombre, '') AS proveedor
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		LEFT JOIN proveedores pr ON p.proveedor_id = pr.id` + where
	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", orden, len(args)+1, len(args)+2)
	args = append(args, f.Limite, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*repository.ProductoListado
	for rows.Next() {
		var fila repository.ProductoListado
		p := &fila.Producto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
			&p.StockActual, &p.StockMinimo, &p.StockMaximo, &p.CategoriaID, &p.ProveedorID,
			&p.Activo, &p.FechaCreacion, &fila.Categoria, &fila.Proveedor,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &fila)
	}
	return list, rows.Err()
}

// Count devuelve el total de productos que cumplen el filtro (para paginación).
func (r *ProductoRepo) Count(f repository.ProductoFilter) (int, error) {
	where, args := filtroSQL(f)
	query := `
		SELECT COUNT(*)
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		LEFT JOIN proveedores pr ON p.proveedor_id = pr.id` + where

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return total, nil
}
