package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventario/internal/application/catalog"
	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type catalogoStore struct {
	productos   map[int64]*entity.Producto
	movimientos []*entity.MovimientoInventario
	nextID      int64
}

func newCatalogoStore() *catalogoStore {
	return &catalogoStore{productos: make(map[int64]*entity.Producto)}
}

func (s *catalogoStore) clone() *catalogoStore {
	c := &catalogoStore{
		productos:   make(map[int64]*entity.Producto, len(s.productos)),
		movimientos: append([]*entity.MovimientoInventario(nil), s.movimientos...),
		nextID:      s.nextID,
	}
	for id, p := range s.productos {
		cp := *p
		c.productos[id] = &cp
	}
	return c
}

type fakeCatalogoProductoRepo struct {
	s *catalogoStore
}

func (r *fakeCatalogoProductoRepo) Create(p *entity.Producto) error {
	r.s.nextID++
	p.ID = r.s.nextID
	cp := *p
	r.s.productos[p.ID] = &cp
	return nil
}

func (r *fakeCatalogoProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeCatalogoProductoRepo) GetByIDForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeCatalogoProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogoProductoRepo) GetByCodigoForUpdate(codigo string) (*entity.Producto, error) {
	return r.GetByCodigo(codigo)
}

func (r *fakeCatalogoProductoRepo) UpdateStock(id int64, stock int) error {
	if p, ok := r.s.productos[id]; ok {
		p.StockActual = stock
	}
	return nil
}

func (r *fakeCatalogoProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.s.productos[p.ID] = &cp
	return nil
}

func (r *fakeCatalogoProductoRepo) Deactivate(id int64) error {
	if p, ok := r.s.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *fakeCatalogoProductoRepo) List(f repository.ProductoFilter) ([]*repository.ProductoListado, error) {
	var out []*repository.ProductoListado
	for _, p := range r.s.productos {
		if f.Activo != nil && p.Activo != *f.Activo {
			continue
		}
		out = append(out, &repository.ProductoListado{Producto: *p})
	}
	return out, nil
}

func (r *fakeCatalogoProductoRepo) Count(f repository.ProductoFilter) (int, error) {
	filas, _ := r.List(f)
	return len(filas), nil
}

type fakeCatalogoMovRepo struct {
	s *catalogoStore
}

func (r *fakeCatalogoMovRepo) Create(m *entity.MovimientoInventario) error {
	r.s.nextID++
	m.ID = r.s.nextID
	cp := *m
	r.s.movimientos = append(r.s.movimientos, &cp)
	return nil
}

func (r *fakeCatalogoMovRepo) ListByProducto(productoID int64, limite int) ([]*repository.MovimientoDetallado, error) {
	var out []*repository.MovimientoDetallado
	for _, m := range r.s.movimientos {
		if m.ProductoID == productoID && len(out) < limite {
			out = append(out, &repository.MovimientoDetallado{Movimiento: *m, TipoNombre: "Ajuste inventario", TipoClase: "ajuste"})
		}
	}
	return out, nil
}

type fakeCatalogoTipoRepo struct{}

func (fakeCatalogoTipoRepo) GetByID(int64) (*entity.TipoMovimiento, error) { return nil, nil }
func (fakeCatalogoTipoRepo) List() ([]*entity.TipoMovimiento, error)      { return nil, nil }

type fakeCatalogoTxRunner struct {
	store *catalogoStore
}

func (r *fakeCatalogoTxRunner) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	tipoRepo repository.TipoMovimientoRepository,
) error) error {
	staged := r.store.clone()
	err := fn(&fakeCatalogoProductoRepo{s: staged}, &fakeCatalogoMovRepo{s: staged}, fakeCatalogoTipoRepo{})
	if err != nil {
		return err
	}
	*r.store = *staged
	return nil
}

type fakeCatalogoAlertas struct{}

func (fakeCatalogoAlertas) VerificarStockBajo(int64) {}

func nuevoCatalogoUC(store *catalogoStore) *catalog.ProductoUseCase {
	return catalog.NewProductoUseCase(
		&fakeCatalogoTxRunner{store: store},
		&fakeCatalogoProductoRepo{s: store},
		&fakeCatalogoMovRepo{s: store},
		fakeCatalogoAlertas{},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_ConStockInicialRegistraMovimiento(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	res, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo:      "ELE001",
		Nombre:      "Laptop HP Pavilion",
		PrecioVenta: decimal.RequireFromString("899.99"),
		StockActual: 15,
		StockMinimo: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "ELE001", res.Codigo)
	assert.True(t, res.Activo)

	require.Len(t, store.movimientos, 1)
	mov := store.movimientos[0]
	assert.Equal(t, res.ID, mov.ProductoID)
	assert.Equal(t, inventory.TipoMovimientoAjuste, mov.TipoMovimientoID)
	assert.Equal(t, 0, mov.StockAnterior)
	assert.Equal(t, 15, mov.StockNuevo)
	assert.Equal(t, "CREACION", mov.Referencia)
}

func TestCrear_SinStockInicialNoRegistraMovimiento(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo:      "ELE002",
		Nombre:      "Mouse inalámbrico",
		PrecioVenta: decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	assert.Empty(t, store.movimientos)
}

// El código es único: repetirlo devuelve ErrDuplicate y no escribe nada, ni
// producto ni movimiento de creación.
func TestCrear_CodigoDuplicado(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	req := dto.CrearProductoRequest{
		Codigo:      "ELE001",
		Nombre:      "Laptop HP Pavilion",
		PrecioVenta: decimal.RequireFromString("899.99"),
		StockActual: 10,
	}
	_, err := uc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, store.productos, 1)
	assert.Len(t, store.movimientos, 1)
}

func TestCrear_EntradaInvalida(t *testing.T) {
	uc := nuevoCatalogoUC(newCatalogoStore())

	casos := []dto.CrearProductoRequest{
		{Nombre: "Sin código", PrecioVenta: decimal.NewFromInt(10)},
		{Codigo: "X01", PrecioVenta: decimal.NewFromInt(10)},
		{Codigo: "X01", Nombre: "Precio cero", PrecioVenta: decimal.Zero},
		{Codigo: "X01", Nombre: "Stock negativo", PrecioVenta: decimal.NewFromInt(10), StockActual: -1},
	}
	for _, in := range casos {
		_, err := uc.Crear(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %q", in.Nombre)
	}
}

func TestListar_PaginacionPorDefecto(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	for _, codigo := range []string{"A01", "A02", "A03"} {
		_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
			Codigo: codigo, Nombre: "Producto " + codigo, PrecioVenta: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	res, err := uc.Listar(dto.ListarProductosQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Paginacion.Pagina)
	assert.Equal(t, 20, res.Paginacion.Limite)
	assert.Equal(t, 3, res.Paginacion.Total)
	assert.Equal(t, 1, res.Paginacion.Paginas)
	assert.Len(t, res.Productos, 3)
}

// Los productos desactivados salen del listado por defecto pero siguen
// existiendo y son consultables por id.
func TestDesactivar_SaleDelListadoPorDefecto(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	res, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: "A01", Nombre: "Producto A01", PrecioVenta: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(res.ID))

	lista, err := uc.Listar(dto.ListarProductosQuery{})
	require.NoError(t, err)
	assert.Empty(t, lista.Productos)

	detalle, err := uc.Obtener(res.ID)
	require.NoError(t, err)
	require.NotNil(t, detalle)
	assert.False(t, detalle.Producto.Activo)
}

func TestDesactivar_ProductoInexistente(t *testing.T) {
	uc := nuevoCatalogoUC(newCatalogoStore())
	assert.ErrorIs(t, uc.Desactivar(99), domain.ErrNotFound)
}

func TestActualizar_NoTocaStock(t *testing.T) {
	store := newCatalogoStore()
	uc := nuevoCatalogoUC(store)

	res, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: "A01", Nombre: "Producto A01", PrecioVenta: decimal.NewFromInt(10), StockActual: 7,
	})
	require.NoError(t, err)

	actualizado, err := uc.Actualizar(res.ID, dto.ActualizarProductoRequest{
		Nombre:      "Producto A01 renombrado",
		PrecioVenta: decimal.NewFromInt(12),
		StockMinimo: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Producto A01 renombrado", actualizado.Nombre)
	assert.Equal(t, 7, actualizado.StockActual, "actualizar el catálogo no altera el stock")
}
