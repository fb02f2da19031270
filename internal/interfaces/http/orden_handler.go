package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/orders"
	"github.com/jhoicas/sistema-inventario/internal/domain"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
)

// OrdenHandler maneja las peticiones HTTP de órdenes de compra.
type OrdenHandler struct {
	uc *orders.OrdenCompraUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *orders.OrdenCompraUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear orden de compra
// @Description  Inserta cabecera y líneas en una transacción; el total lo calcula el
//
//	servidor sumando cantidad × precio_unitario de cada línea.
//
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenRequest  true  "proveedor_id y líneas con producto_id, cantidad y precio_unitario"
// @Success      201   {object}  dto.CrearOrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *OrdenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	lineas := make([]orders.LineaInput, 0, len(in.Productos))
	for _, p := range in.Productos {
		lineas = append(lineas, orders.LineaInput{
			ProductoID:     p.ProductoID,
			Cantidad:       p.Cantidad,
			PrecioUnitario: p.PrecioUnitario,
		})
	}

	res, err := h.uc.Crear(c.Context(), orders.CrearOrdenInput{
		ProveedorID: in.ProveedorID,
		Lineas:      lineas,
		Notas:       in.Notas,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Se requiere proveedor_id y una lista de productos."})
		}
		if err == domain.ErrProductoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado; la orden no fue creada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_NUMBER_CONFLICT", Message: "colisión de número de orden, reintente"})
		}
		return errorInterno(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CrearOrdenResponse{
		Mensaje:     "Orden de compra creada exitosamente",
		OrdenID:     res.OrdenID,
		NumeroOrden: res.NumeroOrden,
		Total:       res.Total,
	})
}

// Obtener godoc
// @Summary      Detalle de una orden de compra con sus líneas
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [get]
func (h *OrdenHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	orden, detalles, err := h.uc.Obtener(int64(id))
	if err != nil {
		return errorInterno(c, err)
	}
	if orden == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Orden no encontrada"})
	}
	return c.JSON(ordenToDTO(orden, detalles))
}

// Listar godoc
// @Summary      Listar órdenes de compra recientes
// @Tags         ordenes
// @Produce      json
// @Param        limite  query  int  false  "Tamaño de página (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.OrdenResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [get]
func (h *OrdenHandler) Listar(c *fiber.Ctx) error {
	limite := c.QueryInt("limite", 20)
	offset := c.QueryInt("offset", 0)

	ordenes, err := h.uc.Listar(limite, offset)
	if err != nil {
		return errorInterno(c, err)
	}
	out := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, ordenToDTO(o, nil))
	}
	return c.JSON(out)
}

func ordenToDTO(o *entity.OrdenCompra, detalles []*entity.DetalleOrdenCompra) dto.OrdenResponse {
	out := dto.OrdenResponse{
		ID:            o.ID,
		NumeroOrden:   o.NumeroOrden,
		ProveedorID:   o.ProveedorID,
		Estado:        o.Estado,
		Total:         o.Total,
		Notas:         o.Notas,
		FechaCreacion: o.FechaCreacion,
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.OrdenDetalleResponse{
			ProductoID:         d.ProductoID,
			CantidadSolicitada: d.CantidadSolicitada,
			PrecioUnitario:     d.PrecioUnitario,
		})
	}
	return out
}
