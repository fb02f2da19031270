package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
)

// HeaderAPIKey header del secreto compartido de la integración externa.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware protege la superficie de integración con un secreto
// compartido: sin header responde 401, con header incorrecto 403. La
// comparación es en tiempo constante.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(HeaderAPIKey)
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_API_KEY", Message: "Acceso no autorizado. API Key no proporcionada."})
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "Acceso prohibido. API Key inválida."})
		}
		return c.Next()
	}
}
