package repository

import "github.com/jhoicas/sistema-inventario/internal/domain/entity"

// CategoriaResumen categoría activa con agregados de sus productos activos.
type CategoriaResumen struct {
	Categoria      entity.Categoria
	ProductosCount int
	StockTotal     int
}

// CategoriaRepository puerto de persistencia para categorías.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error // asigna c.ID
	ListConResumen() ([]*CategoriaResumen, error)
}
