package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
)

// detalleErrores controla si las respuestas 500 incluyen el error subyacente.
// Se fija una vez en Router según el entorno; en producción siempre responde
// el mensaje genérico.
var detalleErrores bool

// errorInterno responde 500. El detalle del error solo sale en desarrollo.
func errorInterno(c *fiber.Ctx, err error) error {
	msg := "error interno del servidor"
	if detalleErrores && err != nil {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}
