package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sistema-inventario/internal/application/alerts"
	"github.com/jhoicas/sistema-inventario/internal/application/catalog"
	"github.com/jhoicas/sistema-inventario/internal/application/inventory"
	"github.com/jhoicas/sistema-inventario/internal/application/orders"
	"github.com/jhoicas/sistema-inventario/internal/application/reports"
	"github.com/jhoicas/sistema-inventario/internal/infrastructure/email"
	infrapdf "github.com/jhoicas/sistema-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/sistema-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sistema-inventario/internal/interfaces/http"
	"github.com/jhoicas/sistema-inventario/pkg/config"
	"github.com/jhoicas/sistema-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	tipoRepo := postgres.NewTipoMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Alertas de stock bajo por correo (best-effort, tras cada commit)
	notificador := email.NewSMTPNotificador(cfg.SMTP)
	alertaSvc := alerts.NewService(productoRepo, notificador, log)

	ajustarStockUC := inventory.NewAjustarStockUseCase(txRunner, alertaSvc)
	sincronizarUC := inventory.NewSincronizarStockUseCase(txRunner)
	productoUC := catalog.NewProductoUseCase(txRunner, productoRepo, movRepo, alertaSvc)
	referenciasUC := catalog.NewReferenciasUseCase(categoriaRepo, proveedorRepo, tipoRepo)
	ordenUC := orders.NewOrdenCompraUseCase(txRunner, ordenRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reporteUC := reports.NewReporteUseCase(reporteRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema de Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:     productoUC,
		ReferenciasUC:  referenciasUC,
		AjustarStock:   ajustarStockUC,
		Sincronizar:    sincronizarUC,
		OrdenUC:        ordenUC,
		ReporteUC:      reporteUC,
		APIKey:         cfg.Integracion.APIKey,
		DetalleErrores: cfg.App.Development(),
	})

	// 404 para rutas no registradas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ruta no encontrada"})
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
