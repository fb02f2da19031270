package inventory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda productos, movimientos y tipos en memoria. El mutex emula
// la serialización por bloqueo de fila de la base real: un solo callback
// transaccional activo a la vez.
type fakeStore struct {
	mu          sync.Mutex
	productos   map[int64]*entity.Producto
	movimientos []*entity.MovimientoInventario
	tipos       map[int64]*entity.TipoMovimiento
	nextMovID   int64
}

func newFakeStore(productos []*entity.Producto) *fakeStore {
	s := &fakeStore{
		productos: make(map[int64]*entity.Producto),
		tipos: map[int64]*entity.TipoMovimiento{
			1: {ID: 1, Nombre: "Compra", Tipo: entity.TipoEntrada},
			2: {ID: 2, Nombre: "Venta", Tipo: entity.TipoSalida},
			4: {ID: 4, Nombre: "Ajuste inventario", Tipo: entity.TipoAjuste},
		},
	}
	for _, p := range productos {
		cp := *p
		s.productos[p.ID] = &cp
	}
	return s
}

// clone copia el estado mutable para que un callback fallido no deje rastro.
func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{
		productos:   make(map[int64]*entity.Producto, len(s.productos)),
		movimientos: append([]*entity.MovimientoInventario(nil), s.movimientos...),
		tipos:       s.tipos,
		nextMovID:   s.nextMovID,
	}
	for id, p := range s.productos {
		cp := *p
		c.productos[id] = &cp
	}
	return c
}

func (s *fakeStore) replace(c *fakeStore) {
	s.productos = c.productos
	s.movimientos = c.movimientos
	s.nextMovID = c.nextMovID
}

// producto devuelve una copia del producto (lectura segura fuera de tx).
func (s *fakeStore) producto(id int64) *entity.Producto {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *fakeStore) movimientosDe(productoID int64) []*entity.MovimientoInventario {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range s.movimientos {
		if m.ProductoID == productoID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

// fakeTxRunner ejecuta el callback sobre una copia del store y solo publica
// los cambios si no hubo error: todo o nada, como la transacción real.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	tipoRepo repository.TipoMovimientoRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	staged := r.store.clone()
	err := fn(&fakeProductoRepo{s: staged}, &fakeMovimientoRepo{s: staged}, &fakeTipoRepo{s: staged})
	if err != nil {
		return err
	}
	r.store.replace(staged)
	return nil
}

type fakeProductoRepo struct {
	s *fakeStore
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	id := int64(len(r.s.productos) + 1)
	p.ID = id
	cp := *p
	r.s.productos[id] = &cp
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) GetByIDForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetByCodigoForUpdate(codigo string) (*entity.Producto, error) {
	return r.GetByCodigo(codigo)
}

func (r *fakeProductoRepo) UpdateStock(id int64, stock int) error {
	if p, ok := r.s.productos[id]; ok {
		p.StockActual = stock
	}
	return nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.s.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) Deactivate(id int64) error {
	if p, ok := r.s.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *fakeProductoRepo) List(repository.ProductoFilter) ([]*repository.ProductoListado, error) {
	var out []*repository.ProductoListado
	for _, p := range r.s.productos {
		out = append(out, &repository.ProductoListado{Producto: *p})
	}
	return out, nil
}

func (r *fakeProductoRepo) Count(repository.ProductoFilter) (int, error) {
	return len(r.s.productos), nil
}

type fakeMovimientoRepo struct {
	s *fakeStore
}

func (r *fakeMovimientoRepo) Create(m *entity.MovimientoInventario) error {
	r.s.nextMovID++
	m.ID = r.s.nextMovID
	cp := *m
	r.s.movimientos = append(r.s.movimientos, &cp)
	return nil
}

func (r *fakeMovimientoRepo) ListByProducto(productoID int64, limite int) ([]*repository.MovimientoDetallado, error) {
	var out []*repository.MovimientoDetallado
	for _, m := range r.s.movimientos {
		if m.ProductoID == productoID {
			out = append(out, &repository.MovimientoDetallado{Movimiento: *m})
		}
		if len(out) == limite {
			break
		}
	}
	return out, nil
}

type fakeTipoRepo struct {
	s *fakeStore
}

func (r *fakeTipoRepo) GetByID(id int64) (*entity.TipoMovimiento, error) {
	t, ok := r.s.tipos[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTipoRepo) List() ([]*entity.TipoMovimiento, error) {
	var out []*entity.TipoMovimiento
	for _, t := range r.s.tipos {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

// fakeAlertas registra las verificaciones de stock bajo disparadas.
type fakeAlertas struct {
	mu       sync.Mutex
	llamadas []int64
	avisos   chan int64
}

func newFakeAlertas() *fakeAlertas {
	return &fakeAlertas{avisos: make(chan int64, 16)}
}

func (a *fakeAlertas) VerificarStockBajo(productoID int64) {
	a.mu.Lock()
	a.llamadas = append(a.llamadas, productoID)
	a.mu.Unlock()
	a.avisos <- productoID
}
