package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para el dashboard y los reportes de
// inventario. Opera directo sobre el pool: ninguna consulta necesita
// transacción.
type ReporteRepo struct {
	pool *pgxpool.Pool
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(pool *pgxpool.Pool) *ReporteRepo {
	return &ReporteRepo{pool: pool}
}

// Estadisticas devuelve los agregados generales de productos activos.
// Usa COALESCE para devolver cero con el catálogo vacío.
func (r *ReporteRepo) Estadisticas(ctx context.Context) (*repository.EstadisticasInventario, error) {
	const query = `
	SELECT
	    COUNT(*)                                                    AS productos_activos,
	    COUNT(*) FILTER (WHERE stock_actual <= stock_minimo)        AS productos_stock_bajo,
	    COALESCE(SUM(stock_actual * precio_compra), 0)              AS valor_inventario_compra,
	    COALESCE(SUM(stock_actual * precio_venta), 0)               AS valor_inventario_venta
	FROM productos
	WHERE activo = true`

	var e repository.EstadisticasInventario
	err := r.pool.QueryRow(ctx, query).Scan(
		&e.ProductosActivos,
		&e.ProductosStockBajo,
		&e.ValorInventarioCompra,
		&e.ValorInventarioVenta,
	)
	if err != nil {
		return nil, fmt.Errorf("reportes.Estadisticas: %w", err)
	}
	return &e, nil
}

// MovimientosRecientes devuelve los últimos `limite` movimientos con el
// nombre del producto y del tipo resueltos.
func (r *ReporteRepo) MovimientosRecientes(ctx context.Context, limite int) ([]*repository.MovimientoReciente, error) {
	const query = `
	SELECT
	    mi.fecha_movimiento,
	    p.nombre                      AS producto,
	    mi.cantidad,
	    tm.nombre                     AS tipo_movimiento,
	    COALESCE(mi.referencia, '')   AS referencia
	FROM movimientos_inventario mi
	JOIN productos        p  ON mi.producto_id = p.id
	JOIN tipos_movimiento tm ON mi.tipo_movimiento_id = tm.id
	ORDER BY mi.fecha_movimiento DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limite)
	if err != nil {
		return nil, fmt.Errorf("reportes.MovimientosRecientes: %w", err)
	}
	defer rows.Close()

	var results []*repository.MovimientoReciente
	for rows.Next() {
		var row repository.MovimientoReciente
		if err := rows.Scan(
			&row.FechaMovimiento,
			&row.Producto,
			&row.Cantidad,
			&row.TipoMovimiento,
			&row.Referencia,
		); err != nil {
			return nil, fmt.Errorf("reportes.MovimientosRecientes scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// ProductosTop devuelve los `limite` productos con más unidades de salida en
// los últimos `dias` días. La cantidad de los movimientos de salida es
// negativa, de ahí el ABS.
func (r *ReporteRepo) ProductosTop(ctx context.Context, dias, limite int) ([]*repository.ProductoTop, error) {
	const query = `
	SELECT
	    p.nombre,
	    SUM(ABS(mi.cantidad))   AS cantidad_movida,
	    COUNT(*)                AS movimientos
	FROM movimientos_inventario mi
	JOIN productos        p  ON mi.producto_id = p.id
	JOIN tipos_movimiento tm ON mi.tipo_movimiento_id = tm.id
	WHERE tm.tipo = 'salida'
	  AND mi.fecha_movimiento >= CURRENT_DATE - ($1 || ' days')::INTERVAL
	GROUP BY p.id, p.nombre
	ORDER BY cantidad_movida DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, dias, limite)
	if err != nil {
		return nil, fmt.Errorf("reportes.ProductosTop: %w", err)
	}
	defer rows.Close()

	var results []*repository.ProductoTop
	for rows.Next() {
		var row repository.ProductoTop
		if err := rows.Scan(&row.Nombre, &row.CantidadMovida, &row.Movimientos); err != nil {
			return nil, fmt.Errorf("reportes.ProductosTop scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// StockBajo lista los productos activos en o bajo su mínimo, ordenados por
// unidades faltantes, con el contacto del proveedor para la reposición.
func (r *ReporteRepo) StockBajo(ctx context.Context) ([]*repository.ProductoStockBajo, error) {
	const query = `
	SELECT
	    p.id, p.codigo, p.nombre,
	    p.stock_actual, p.stock_minimo,
	    (p.stock_minimo - p.stock_actual)  AS unidades_faltantes,
	    COALESCE(c.nombre, '')             AS categoria,
	    COALESCE(pr.nombre, '')            AS proveedor,
	    COALESCE(pr.email, '')             AS contacto_proveedor
	FROM productos p
	LEFT JOIN categorias  c  ON p.categoria_id = c.id
	LEFT JOIN proveedores pr ON p.proveedor_id = pr.id
	WHERE p.activo = true
	  AND p.stock_actual <= p.stock_minimo
	ORDER BY (p.stock_minimo - p.stock_actual) DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reportes.StockBajo: %w", err)
	}
	defer rows.Close()

	var results []*repository.ProductoStockBajo
	for rows.Next() {
		var row repository.ProductoStockBajo
		if err := rows.Scan(
			&row.ProductoID,
			&row.Codigo,
			&row.Nombre,
			&row.StockActual,
			&row.StockMinimo,
			&row.UnidadesFaltantes,
			&row.Categoria,
			&row.Proveedor,
			&row.ContactoProveedor,
		); err != nil {
			return nil, fmt.Errorf("reportes.StockBajo scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// ValorInventario valora el inventario activo a precio de compra y de venta:
// una fila total, una por categoría y una por proveedor.
func (r *ReporteRepo) ValorInventario(ctx context.Context) ([]*repository.ValorInventarioFila, error) {
	const query = `
	SELECT
	    'Total Inventario'                                          AS concepto,
	    COALESCE(SUM(p.stock_actual * p.precio_compra), 0)          AS valor_compra,
	    COALESCE(SUM(p.stock_actual * p.precio_venta), 0)           AS valor_venta,
	    COALESCE(SUM((p.precio_venta - p.precio_compra) * p.stock_actual), 0) AS ganancia_potencial
	FROM productos p
	WHERE p.activo = true

	UNION ALL

	SELECT
	    'Por Categoría: ' || c.nombre,
	    SUM(p.stock_actual * p.precio_compra),
	    SUM(p.stock_actual * p.precio_venta),
	    SUM((p.precio_venta - p.precio_compra) * p.stock_actual)
	FROM productos p
	JOIN categorias c ON p.categoria_id = c.id
	WHERE p.activo = true
	GROUP BY c.id, c.nombre

	UNION ALL

	SELECT
	    'Por Proveedor: ' || pr.nombre,
	    SUM(p.stock_actual * p.precio_compra),
	    SUM(p.stock_actual * p.precio_venta),
	    SUM((p.precio_venta - p.precio_compra) * p.stock_actual)
	FROM productos p
	JOIN proveedores pr ON p.proveedor_id = pr.id
	WHERE p.activo = true
	GROUP BY pr.id, pr.nombre`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reportes.ValorInventario: %w", err)
	}
	defer rows.Close()

	var results []*repository.ValorInventarioFila
	for rows.Next() {
		var row repository.ValorInventarioFila
		if err := rows.Scan(
			&row.Concepto,
			&row.ValorCompra,
			&row.ValorVenta,
			&row.GananciaPotencial,
		); err != nil {
			return nil, fmt.Errorf("reportes.ValorInventario scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// MovimientosPorPeriodo agrupa los movimientos del rango por día y tipo.
func (r *ReporteRepo) MovimientosPorPeriodo(ctx context.Context, desde, hasta time.Time) ([]*repository.MovimientoPeriodoFila, error) {
	const query = `
	SELECT
	    DATE(mi.fecha_movimiento)  AS fecha,
	    tm.nombre                  AS tipo_movimiento,
	    tm.tipo,
	    COUNT(*)                   AS cantidad_movimientos,
	    SUM(ABS(mi.cantidad))      AS total_unidades
	FROM movimientos_inventario mi
	JOIN tipos_movimiento tm ON mi.tipo_movimiento_id = tm.id
	WHERE mi.fecha_movimiento BETWEEN $1 AND $2
	GROUP BY DATE(mi.fecha_movimiento), tm.id, tm.nombre, tm.tipo
	ORDER BY fecha DESC, cantidad_movimientos DESC`

	rows, err := r.pool.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reportes.MovimientosPorPeriodo: %w", err)
	}
	defer rows.Close()

	var results []*repository.MovimientoPeriodoFila
	for rows.Next() {
		var row repository.MovimientoPeriodoFila
		if err := rows.Scan(
			&row.Fecha,
			&row.TipoMovimiento,
			&row.Tipo,
			&row.CantidadMovimientos,
			&row.TotalUnidades,
		); err != nil {
			return nil, fmt.Errorf("reportes.MovimientosPorPeriodo scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}
