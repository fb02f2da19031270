package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventario/internal/application/catalog"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/application/orders"
	"github.com/jhoicas/sistema-inventario/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC    *catalog.ProductoUseCase
	ReferenciasUC *catalog.ReferenciasUseCase
	AjustarStock  *inventory.AjustarStockUseCase
	Sincronizar   *inventory.SincronizarStockUseCase
	OrdenUC       *orders.OrdenCompraUseCase
	ReporteUC     *reports.ReporteUseCase
	APIKey        string
	// DetalleErrores expone el error subyacente en respuestas 500 (desarrollo).
	DetalleErrores bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	detalleErrores = deps.DetalleErrores

	api := app.Group("/api")

	// Productos (catálogo + ajuste de stock)
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	inventarioHandler := NewInventarioHandler(deps.AjustarStock)
	productos.Get("/", productoHandler.Listar)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/:id", productoHandler.Obtener)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Desactivar)
	productos.Patch("/:id/stock", inventarioHandler.AjustarStock)

	// Referencias del catálogo
	referenciasHandler := NewReferenciasHandler(deps.ReferenciasUC)
	api.Get("/categorias", referenciasHandler.ListarCategorias)
	api.Post("/categorias", referenciasHandler.CrearCategoria)
	api.Get("/proveedores", referenciasHandler.ListarProveedores)
	api.Post("/proveedores", referenciasHandler.CrearProveedor)
	api.Get("/tipos-movimiento", referenciasHandler.ListarTiposMovimiento)

	// Órdenes de compra
	ordenes := api.Group("/ordenes-compra")
	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	ordenes.Post("/", ordenHandler.Crear)
	ordenes.Get("/", ordenHandler.Listar)
	ordenes.Get("/:id", ordenHandler.Obtener)

	// Dashboard y reportes
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	api.Get("/dashboard", reporteHandler.Dashboard)
	reportes := api.Group("/reportes")
	reportes.Get("/stock-bajo", reporteHandler.StockBajo)
	reportes.Get("/stock-bajo/pdf", reporteHandler.StockBajoPDF)
	reportes.Get("/valor-inventario", reporteHandler.ValorInventario)
	reportes.Get("/movimientos", reporteHandler.MovimientosPorPeriodo)

	// Integración externa (protegida con API Key)
	integracion := api.Group("/integracion", APIKeyMiddleware(deps.APIKey))
	integracionHandler := NewIntegracionHandler(deps.Sincronizar)
	integracion.Put("/productos/stock", integracionHandler.SincronizarStock)
}
