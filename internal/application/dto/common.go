package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Paginacion metadatos de página en listados.
type Paginacion struct {
	Pagina  int `json:"pagina"`
	Limite  int `json:"limite"`
	Total   int `json:"total"`
	Paginas int `json:"paginas"`
}
