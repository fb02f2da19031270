package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/dto"
	"github.com/jhoicas/sistema-inventario/internal/application/reports"
	"github.com/jhoicas/sistema-inventario/internal/domain"
)

// ReporteHandler maneja el dashboard y los reportes de inventario.
type ReporteHandler struct {
	uc *reports.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reports.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Panel con estadísticas, movimientos recientes y productos top
// @Tags         reportes
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *ReporteHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}

// StockBajo godoc
// @Summary      Productos en o bajo su stock mínimo
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.StockBajoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/stock-bajo [get]
func (h *ReporteHandler) StockBajo(c *fiber.Ctx) error {
	out, err := h.uc.StockBajo(c.Context())
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}

// StockBajoPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/stock-bajo/pdf [get]
func (h *ReporteHandler) StockBajoPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.StockBajoPDF(c.Context())
	if err != nil {
		return errorInterno(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}

// ValorInventario godoc
// @Summary      Valor del inventario total, por categoría y por proveedor
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ValorInventarioResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/valor-inventario [get]
func (h *ReporteHandler) ValorInventario(c *fiber.Ctx) error {
	out, err := h.uc.ValorInventario(c.Context())
	if err != nil {
		return errorInterno(c, err)
	}
	return c.JSON(out)
}

// MovimientosPorPeriodo godoc
// @Summary      Movimientos agregados por día y tipo en un rango de fechas
// @Tags         reportes
// @Produce      json
// @Param        desde  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta  query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.MovimientoPeriodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos [get]
func (h *ReporteHandler) MovimientosPorPeriodo(c *fiber.Ctx) error {
	desde, err1 := time.Parse("2006-01-02", c.Query("desde"))
	hasta, err2 := time.Parse("2006-01-02", c.Query("hasta"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "desde y hasta son requeridos (YYYY-MM-DD)"})
	}
	// El rango es inclusivo: hasta cubre el día completo
	hasta = hasta.Add(24*time.Hour - time.Nanosecond)

	out, err := h.uc.MovimientosPorPeriodo(c.Context(), desde, hasta)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "rango de fechas inválido"})
		}
		return errorInterno(c, err)
	}
	return c.JSON(out)
}
