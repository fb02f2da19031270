package entity

// Categoria agrupa productos; la desactivación es suave (Activa=false) y las
// categorías inactivas quedan fuera de los agregados.
type Categoria struct {
	ID          int64
	Nombre      string
	Descripcion string
	Activa      bool
}
