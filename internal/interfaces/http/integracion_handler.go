package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/domain"
)

// IntegracionHandler maneja la superficie de integración externa (protegida
// por API Key).
type IntegracionHandler struct {
	uc *inventory.SincronizarStockUseCase
}

// NewIntegracionHandler construye el handler.
func NewIntegracionHandler(uc *inventory.SincronizarStockUseCase) *IntegracionHandler {
	return &IntegracionHandler{uc: uc}
}

// SincronizarStock godoc
// @Summary      Sincronizar stock en bloque desde un sistema externo
// @Description  Fija stock_actual de cada producto al nivel absoluto reportado y registra
//
//	un movimiento de ajuste por producto. El lote es atómico: todo o nada.
//
// @Tags         integracion
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SincronizarStockRequest  true  "Lote de códigos con su stock_nuevo absoluto"
// @Success      200   {object}  dto.SincronizarStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/integracion/productos/stock [put]
func (h *IntegracionHandler) SincronizarStock(c *fiber.Ctx) error {
	var in dto.SincronizarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "El cuerpo de la petición debe contener un array de \"productos\"."})
	}

	entradas := make([]inventory.SincronizarEntrada, 0, len(in.Productos))
	for _, p := range in.Productos {
		entradas = append(entradas, inventory.SincronizarEntrada{
			Codigo:     p.Codigo,
			StockNuevo: p.StockNuevo,
		})
	}

	actualizados, err := h.uc.Sincronizar(c.Context(), entradas)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada producto requiere codigo y stock_nuevo"})
		}
		if err == domain.ErrProductoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado; no se aplicó ningún cambio"})
		}
		return errorInterno(c, err)
	}

	return c.JSON(dto.SincronizarStockResponse{
		Mensaje:               "Stock actualizado correctamente",
		ProductosActualizados: actualizados,
	})
}
