package orders_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventario/internal/application/orders"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type ordenStore struct {
	productos map[int64]*entity.Producto
	ordenes   map[int64]*entity.OrdenCompra
	detalles  []*entity.DetalleOrdenCompra
	nextID    int64
}

func newOrdenStore(productos ...*entity.Producto) *ordenStore {
	s := &ordenStore{
		productos: make(map[int64]*entity.Producto),
		ordenes:   make(map[int64]*entity.OrdenCompra),
	}
	for _, p := range productos {
		s.productos[p.ID] = p
	}
	return s
}

func (s *ordenStore) clone() *ordenStore {
	c := &ordenStore{
		productos: s.productos,
		ordenes:   make(map[int64]*entity.OrdenCompra, len(s.ordenes)),
		detalles:  append([]*entity.DetalleOrdenCompra(nil), s.detalles...),
		nextID:    s.nextID,
	}
	for id, o := range s.ordenes {
		cp := *o
		c.ordenes[id] = &cp
	}
	return c
}

type fakeOrdenRepo struct {
	s *ordenStore
}

func (r *fakeOrdenRepo) CreateCabecera(o *entity.OrdenCompra) error {
	for _, existente := range r.s.ordenes {
		if existente.NumeroOrden == o.NumeroOrden {
			return domain.ErrConflict
		}
	}
	r.s.nextID++
	o.ID = r.s.nextID
	cp := *o
	r.s.ordenes[o.ID] = &cp
	return nil
}

func (r *fakeOrdenRepo) CreateDetalle(d *entity.DetalleOrdenCompra) error {
	r.s.nextID++
	d.ID = r.s.nextID
	cp := *d
	r.s.detalles = append(r.s.detalles, &cp)
	return nil
}

func (r *fakeOrdenRepo) UpdateTotal(ordenID int64, total decimal.Decimal) error {
	if o, ok := r.s.ordenes[ordenID]; ok {
		o.Total = total
	}
	return nil
}

func (r *fakeOrdenRepo) GetByID(id int64) (*entity.OrdenCompra, []*entity.DetalleOrdenCompra, error) {
	o, ok := r.s.ordenes[id]
	if !ok {
		return nil, nil, nil
	}
	cp := *o
	var det []*entity.DetalleOrdenCompra
	for _, d := range r.s.detalles {
		if d.OrdenCompraID == id {
			dc := *d
			det = append(det, &dc)
		}
	}
	return &cp, det, nil
}

func (r *fakeOrdenRepo) List(limite, offset int) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range r.s.ordenes {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOrdenProductoRepo struct {
	s *ordenStore
}

func (r *fakeOrdenProductoRepo) Create(*entity.Producto) error { return nil }

func (r *fakeOrdenProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeOrdenProductoRepo) GetByIDForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeOrdenProductoRepo) GetByCodigo(string) (*entity.Producto, error)          { return nil, nil }
func (r *fakeOrdenProductoRepo) GetByCodigoForUpdate(string) (*entity.Producto, error) { return nil, nil }
func (r *fakeOrdenProductoRepo) UpdateStock(int64, int) error                          { return nil }
func (r *fakeOrdenProductoRepo) Update(*entity.Producto) error                         { return nil }
func (r *fakeOrdenProductoRepo) Deactivate(int64) error                                { return nil }
func (r *fakeOrdenProductoRepo) List(repository.ProductoFilter) ([]*repository.ProductoListado, error) {
	return nil, nil
}
func (r *fakeOrdenProductoRepo) Count(repository.ProductoFilter) (int, error) { return 0, nil }

// fakeOrdenTxRunner publica los cambios solo si el callback no falla.
type fakeOrdenTxRunner struct {
	store *ordenStore
}

func (r *fakeOrdenTxRunner) RunOrden(_ context.Context, fn func(
	ordenRepo repository.OrdenCompraRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	staged := r.store.clone()
	if err := fn(&fakeOrdenRepo{s: staged}, &fakeOrdenProductoRepo{s: staged}); err != nil {
		return err
	}
	*r.store = *staged
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func producto(id int64, codigo string) *entity.Producto {
	return &entity.Producto{ID: id, Codigo: codigo, Nombre: "Producto " + codigo, Activo: true}
}

// El total lo calcula el servidor como suma exacta de cantidad × precio
// unitario, sin errores de coma flotante.
func TestCrear_TotalExactoEnDecimal(t *testing.T) {
	store := newOrdenStore(producto(1, "ELE001"), producto(2, "ELE003"))
	uc := orders.NewOrdenCompraUseCase(&fakeOrdenTxRunner{store: store}, &fakeOrdenRepo{s: store})

	res, err := uc.Crear(context.Background(), orders.CrearOrdenInput{
		ProveedorID: 1,
		Lineas: []orders.LineaInput{
			{ProductoID: 1, Cantidad: 3, PrecioUnitario: decimal.RequireFromString("19.99")},
			{ProductoID: 2, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("45.10")},
		},
	})
	require.NoError(t, err)

	// 3×19.99 + 2×45.10 = 59.97 + 90.20 = 150.17
	assert.True(t, res.Total.Equal(decimal.RequireFromString("150.17")),
		"total esperado 150.17, obtenido %s", res.Total)

	orden, detalles, err := uc.Obtener(res.OrdenID)
	require.NoError(t, err)
	require.NotNil(t, orden)
	assert.Equal(t, entity.OrdenPendiente, orden.Estado)
	assert.True(t, orden.Total.Equal(res.Total))
	assert.Len(t, detalles, 2)
}

// El número de orden lleva el prefijo OC- y es distinto entre órdenes.
func TestCrear_NumeroOrdenUnico(t *testing.T) {
	store := newOrdenStore(producto(1, "ELE001"))
	uc := orders.NewOrdenCompraUseCase(&fakeOrdenTxRunner{store: store}, &fakeOrdenRepo{s: store})

	linea := []orders.LineaInput{{ProductoID: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10)}}

	a, err := uc.Crear(context.Background(), orders.CrearOrdenInput{ProveedorID: 1, Lineas: linea})
	require.NoError(t, err)
	b, err := uc.Crear(context.Background(), orders.CrearOrdenInput{ProveedorID: 1, Lineas: linea})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.NumeroOrden, "OC-"))
	assert.NotEqual(t, a.NumeroOrden, b.NumeroOrden)
}

// Cualquier línea inválida rechaza la orden completa antes de escribir.
func TestCrear_LineaInvalidaNoEscribe(t *testing.T) {
	store := newOrdenStore(producto(1, "ELE001"))
	uc := orders.NewOrdenCompraUseCase(&fakeOrdenTxRunner{store: store}, &fakeOrdenRepo{s: store})

	casos := []orders.CrearOrdenInput{
		{ProveedorID: 0, Lineas: []orders.LineaInput{{ProductoID: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5)}}},
		{ProveedorID: 1, Lineas: nil},
		{ProveedorID: 1, Lineas: []orders.LineaInput{{ProductoID: 1, Cantidad: 0, PrecioUnitario: decimal.NewFromInt(5)}}},
		{ProveedorID: 1, Lineas: []orders.LineaInput{{ProductoID: 1, Cantidad: 2, PrecioUnitario: decimal.Zero}}},
		{ProveedorID: 1, Lineas: []orders.LineaInput{{ProductoID: 1, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(-3)}}},
	}
	for _, in := range casos {
		_, err := uc.Crear(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.ordenes, "ninguna orden debe persistirse con entrada inválida")
	assert.Empty(t, store.detalles)
}

// Un producto inexistente en cualquier línea revierte cabecera y líneas ya
// insertadas: la orden no queda a medio poblar.
func TestCrear_ProductoInexistenteRevierteOrden(t *testing.T) {
	store := newOrdenStore(producto(1, "ELE001"))
	uc := orders.NewOrdenCompraUseCase(&fakeOrdenTxRunner{store: store}, &fakeOrdenRepo{s: store})

	_, err := uc.Crear(context.Background(), orders.CrearOrdenInput{
		ProveedorID: 1,
		Lineas: []orders.LineaInput{
			{ProductoID: 1, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(10)},
			{ProductoID: 99, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
	assert.Empty(t, store.ordenes, "la cabecera debe revertirse con el lote")
	assert.Empty(t, store.detalles)
}

func TestObtener_OrdenInexistente(t *testing.T) {
	store := newOrdenStore()
	uc := orders.NewOrdenCompraUseCase(&fakeOrdenTxRunner{store: store}, &fakeOrdenRepo{s: store})

	orden, detalles, err := uc.Obtener(42)
	require.NoError(t, err)
	assert.Nil(t, orden)
	assert.Nil(t, detalles)
}
