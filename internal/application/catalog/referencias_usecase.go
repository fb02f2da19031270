package catalog

import (
	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
)

// ReferenciasUseCase altas y listados de categorías, proveedores y tipos de
// movimiento (las entidades de referencia del catálogo).
type ReferenciasUseCase struct {
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
	tipoRepo      repository.TipoMovimientoRepository
}

// NewReferenciasUseCase construye el caso de uso.
func NewReferenciasUseCase(
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
	tipoRepo repository.TipoMovimientoRepository,
) *ReferenciasUseCase {
	return &ReferenciasUseCase{
		categoriaRepo: categoriaRepo,
		proveedorRepo: proveedorRepo,
		tipoRepo:      tipoRepo,
	}
}

// CrearCategoria registra una categoría activa.
func (uc *ReferenciasUseCase) CrearCategoria(in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{Nombre: in.Nombre, Descripcion: in.Descripcion, Activa: true}
	if err := uc.categoriaRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}, nil
}

// ListarCategorias devuelve las categorías activas con sus agregados.
func (uc *ReferenciasUseCase) ListarCategorias() ([]dto.CategoriaResponse, error) {
	filas, err := uc.categoriaRepo.ListConResumen()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.CategoriaResponse{
			ID:             f.Categoria.ID,
			Nombre:         f.Categoria.Nombre,
			Descripcion:    f.Categoria.Descripcion,
			ProductosCount: f.ProductosCount,
			StockTotal:     f.StockTotal,
		})
	}
	return out, nil
}

// CrearProveedor registra un proveedor activo.
func (uc *ReferenciasUseCase) CrearProveedor(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		Nombre:   in.Nombre,
		Contacto: in.Contacto,
		Email:    in.Email,
		Telefono: in.Telefono,
		Activo:   true,
	}
	if err := uc.proveedorRepo.Create(p); err != nil {
		return nil, err
	}
	return &dto.ProveedorResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Contacto: p.Contacto,
		Email:    p.Email,
		Telefono: p.Telefono,
	}, nil
}

// ListarProveedores devuelve los proveedores activos con sus agregados.
func (uc *ReferenciasUseCase) ListarProveedores() ([]dto.ProveedorResponse, error) {
	filas, err := uc.proveedorRepo.ListConResumen()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ProveedorResponse{
			ID:                     f.Proveedor.ID,
			Nombre:                 f.Proveedor.Nombre,
			Contacto:               f.Proveedor.Contacto,
			Email:                  f.Proveedor.Email,
			Telefono:               f.Proveedor.Telefono,
			ProductosSuministrados: f.ProductosSuministrados,
			PrecioPromedioCompra:   f.PrecioPromedioCompra,
		})
	}
	return out, nil
}

// ListarTiposMovimiento devuelve el catálogo de tipos de movimiento.
func (uc *ReferenciasUseCase) ListarTiposMovimiento() ([]dto.TipoMovimientoResponse, error) {
	tipos, err := uc.tipoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoMovimientoResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoMovimientoResponse{ID: t.ID, Nombre: t.Nombre, Tipo: t.Tipo})
	}
	return out, nil
}
