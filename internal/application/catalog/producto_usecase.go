package catalog

import (
	"context"
	"math"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// ProductoUseCase CRUD y consultas de catálogo sobre productos.
type ProductoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoRepository
	alertas      AlertaStock
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	alertas AlertaStock,
) *ProductoUseCase {
	return &ProductoUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		movRepo:      movRepo,
		alertas:      alertas,
	}
}

// Crear registra un producto nuevo. Si trae stock inicial, el alta del
// producto y su movimiento de creación se insertan en la misma transacción.
// Código duplicado devuelve ErrDuplicate sin escribir nada.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" || !in.PrecioVenta.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 || in.StockMinimo < 0 || in.PrecioCompra.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMaximo <= 0 {
		in.StockMaximo = 1000
	}

	producto := &entity.Producto{
		Codigo:       in.Codigo,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		PrecioCompra: in.PrecioCompra,
		PrecioVenta:  in.PrecioVenta,
		StockActual:  in.StockActual,
		StockMinimo:  in.StockMinimo,
		StockMaximo:  in.StockMaximo,
		CategoriaID:  in.CategoriaID,
		ProveedorID:  in.ProveedorID,
		Activo:       true,
	}

	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
		_ repository.TipoMovimientoRepository,
	) error {
		existente, err := productoRepo.GetByCodigo(in.Codigo)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrDuplicate
		}
		if err := productoRepo.Create(producto); err != nil {
			return err
		}
		if producto.StockActual > 0 {
			mov := &entity.MovimientoInventario{
				ProductoID:       producto.ID,
				TipoMovimientoID: inventory.TipoMovimientoAjuste,
				Cantidad:         producto.StockActual,
				StockAnterior:    0,
				StockNuevo:       producto.StockActual,
				Referencia:       "CREACION",
				Notas:            "Stock inicial al crear producto",
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Un producto puede nacer ya por debajo de su mínimo; la verificación no
	// bloquea la respuesta.
	go uc.alertas.VerificarStockBajo(producto.ID)

	out := productoToDTO(producto, "", "")
	return &out, nil
}

// Listar aplica filtros, ordenamiento y paginación sobre el catálogo.
func (uc *ProductoUseCase) Listar(q dto.ListarProductosQuery) (*dto.ProductoListaResponse, error) {
	pagina := q.Pagina
	if pagina <= 0 {
		pagina = 1
	}
	limite := q.Limite
	if limite <= 0 {
		limite = 20
	}
	if limite > 100 {
		limite = 100
	}

	filtro := repository.ProductoFilter{
		Categoria: q.Categoria,
		Proveedor: q.Proveedor,
		StockBajo: q.StockBajo == "true",
		Busqueda:  q.Busqueda,
		Ordenar:   q.Ordenar,
		Limite:    limite,
		Offset:    (pagina - 1) * limite,
	}
	// activo: "true" (por defecto), "false" o "all"
	switch q.Activo {
	case "all":
	case "false":
		activo := false
		filtro.Activo = &activo
	default:
		activo := true
		filtro.Activo = &activo
	}

	filas, err := uc.productoRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	total, err := uc.productoRepo.Count(filtro)
	if err != nil {
		return nil, err
	}

	productos := make([]dto.ProductoResponse, 0, len(filas))
	for _, f := range filas {
		productos = append(productos, productoToDTO(&f.Producto, f.Categoria, f.Proveedor))
	}
	return &dto.ProductoListaResponse{
		Productos: productos,
		Paginacion: dto.Paginacion{
			Pagina:  pagina,
			Limite:  limite,
			Total:   total,
			Paginas: int(math.Ceil(float64(total) / float64(limite))),
		},
	}, nil
}

// Obtener devuelve un producto con sus últimos movimientos; nil si no existe.
func (uc *ProductoUseCase) Obtener(id int64) (*dto.ProductoDetalleResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	movimientos, err := uc.movRepo.ListByProducto(id, 10)
	if err != nil {
		return nil, err
	}

	recientes := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		recientes = append(recientes, dto.MovimientoResponse{
			Cantidad:        m.Movimiento.Cantidad,
			FechaMovimiento: m.Movimiento.FechaMovimiento,
			TipoMovimiento:  m.TipoNombre,
			Tipo:            m.TipoClase,
			Referencia:      m.Movimiento.Referencia,
			Notas:           m.Movimiento.Notas,
		})
	}
	return &dto.ProductoDetalleResponse{
		Producto:             productoToDTO(producto, "", ""),
		MovimientosRecientes: recientes,
	}, nil
}

// Actualizar modifica los campos descriptivos, precios y umbrales. Nunca toca
// stock_actual: eso es del libro de movimientos.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || !in.PrecioVenta.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	producto.Nombre = in.Nombre
	producto.Descripcion = in.Descripcion
	producto.PrecioCompra = in.PrecioCompra
	producto.PrecioVenta = in.PrecioVenta
	producto.StockMinimo = in.StockMinimo
	producto.StockMaximo = in.StockMaximo
	producto.CategoriaID = in.CategoriaID
	producto.ProveedorID = in.ProveedorID

	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	out := productoToDTO(producto, "", "")
	return &out, nil
}

// Desactivar marca el producto como inactivo (los productos nunca se borran).
func (uc *ProductoUseCase) Desactivar(id int64) error {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Deactivate(id)
}

func productoToDTO(p *entity.Producto, categoria, proveedor string) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:           p.ID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		StockActual:  p.StockActual,
		StockMinimo:  p.StockMinimo,
		StockMaximo:  p.StockMaximo,
		Categoria:    categoria,
		Proveedor:    proveedor,
		Activo:       p.Activo,
		EstadoStock:  p.EstadoStock(),
	}
}
