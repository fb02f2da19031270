package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/domain"
)

// InventarioHandler maneja los ajustes de stock del libro de movimientos.
type InventarioHandler struct {
	uc *inventory.AjustarStockUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventory.AjustarStockUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// AjustarStock godoc
// @Summary      Ajustar stock de un producto
// @Description  Aplica un delta con signo sobre stock_actual y registra el movimiento
//
//	en la misma transacción. Un resultado negativo rechaza la operación completa.
//
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del producto"
// @Param        body  body  dto.AjustarStockRequest  true  "cantidad (delta con signo) y tipo_movimiento_id"
// @Success      200   {object}  dto.AjustarStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/stock [patch]
func (h *InventarioHandler) AjustarStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AjustarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	res, err := h.uc.AjustarStock(c.Context(), inventory.AjustarStockInput{
		ProductoID:       int64(id),
		Cantidad:         in.Cantidad,
		TipoMovimientoID: in.TipoMovimientoID,
		Referencia:       in.Referencia,
		Notas:            in.Notas,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad y tipo_movimiento_id son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Stock insuficiente"})
		}
		return errorInterno(c, err)
	}

	return c.JSON(dto.AjustarStockResponse{
		Mensaje:       "Stock actualizado exitosamente",
		ProductoID:    int64(id),
		StockAnterior: res.StockAnterior,
		StockNuevo:    res.StockNuevo,
		Movimiento:    in.Cantidad,
	})
}
