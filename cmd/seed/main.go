// seed crea el esquema del sistema de inventario y carga los datos de
// referencia (tipos de movimiento, categorías, proveedores) junto con
// productos de ejemplo. Es idempotente: se puede ejecutar varias veces.
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL o de las variables DB_* (ver pkg/config).
package main

import (
	"context"
	_ "embed"
	"time"

	"github.com/jhoicas/sistema-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/sistema-inventario/pkg/config"
	"github.com/jhoicas/sistema-inventario/pkg/logger"
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema creado")

	if _, err := pool.Exec(ctx, seedSQL); err != nil {
		log.Fatal().Err(err).Msg("cargar datos iniciales")
	}
	log.Info().Msg("datos iniciales cargados")
}
