package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/catalog"
	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/domain"
)

// ReferenciasHandler maneja categorías, proveedores y tipos de movimiento.
type ReferenciasHandler struct {
	uc *catalog.ReferenciasUseCase
}

// NewReferenciasHandler construye el handler.
func NewReferenciasHandler(uc *catalog.ReferenciasUseCase) *ReferenciasHandler {
	return &ReferenciasHandler{uc: uc}
}

// CrearCategoria godoc
// @Summary      Crear categoría
// @Tags         referencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCategoriaRequest  true  "nombre es obligatorio"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *ReferenciasHandler) CrearCategoria(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCategoria(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la categoría ya existe"})
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarCategorias godoc
// @Summary      Categorías activas con conteo y stock de sus productos
// @Tags         referencias
// @Produce      json
// @Success      200  {array}   dto.CategoriaResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *ReferenciasHandler) ListarCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListarCategorias()
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}

// CrearProveedor godoc
// @Summary      Crear proveedor
// @Tags         referencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "nombre es obligatorio"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ReferenciasHandler) CrearProveedor(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearProveedor(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarProveedores godoc
// @Summary      Proveedores activos con productos suministrados y precio promedio
// @Tags         referencias
// @Produce      json
// @Success      200  {array}   dto.ProveedorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/proveedores [get]
func (h *ReferenciasHandler) ListarProveedores(c *fiber.Ctx) error {
	out, err := h.uc.ListarProveedores()
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}

// ListarTiposMovimiento godoc
// @Summary      Catálogo de tipos de movimiento
// @Tags         referencias
// @Produce      json
// @Success      200  {array}   dto.TipoMovimientoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tipos-movimiento [get]
func (h *ReferenciasHandler) ListarTiposMovimiento(c *fiber.Ctx) error {
	out, err := h.uc.ListarTiposMovimiento()
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}
