package dto

import "github.com/shopspring/decimal"

// CrearCategoriaRequest body para POST /api/categorias.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse categoría con agregados de sus productos activos.
type CategoriaResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion,omitempty"`
	ProductosCount int    `json:"productos_count"`
	StockTotal     int    `json:"stock_total"`
}

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ProveedorResponse proveedor con agregados de sus productos activos.
type ProveedorResponse struct {
	ID                     int64           `json:"id"`
	Nombre                 string          `json:"nombre"`
	Contacto               string          `json:"contacto,omitempty"`
	Email                  string          `json:"email,omitempty"`
	Telefono               string          `json:"telefono,omitempty"`
	ProductosSuministrados int             `json:"productos_suministrados"`
	PrecioPromedioCompra   decimal.Decimal `json:"precio_promedio_compra"`
}
