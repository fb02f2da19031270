package repository

import "github.com/jhoicas/sistema-inventario/internal/domain/entity"

// ProductoFilter filtros del listado de catálogo.
type ProductoFilter struct {
	Categoria string // nombre exacto de categoría
	Proveedor string // nombre exacto de proveedor
	StockBajo bool   // solo productos con stock_actual <= stock_minimo
	Activo    *bool  // nil = todos
	Busqueda  string // LIKE sobre nombre, descripción y código
	Ordenar   string // nombre, precio, stock, categoria
	Limite    int
	Offset    int
}

// ProductoListado fila del listado con los nombres de sus relaciones.
type ProductoListado struct {
	Producto  entity.Producto
	Categoria string
	Proveedor string
}

// ProductoRepository puerto de persistencia para productos.
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductoRepository interface {
	Create(p *entity.Producto) error // asigna p.ID
	GetByID(id int64) (*entity.Producto, error)
	// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	GetByCodigoForUpdate(codigo string) (*entity.Producto, error)
	// UpdateStock fija stock_actual; reservado al libro de movimientos.
	UpdateStock(id int64, stock int) error
	Update(p *entity.Producto) error
	Deactivate(id int64) error
	List(f ProductoFilter) ([]*ProductoListado, error)
	Count(f ProductoFilter) (int, error)
}
