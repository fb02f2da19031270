package entity

// Proveedor suministra cero o más productos. Desactivación suave con Activo.
type Proveedor struct {
	ID       int64
	Nombre   string
	Contacto string
	Email    string
	Telefono string
	Activo   bool
}
