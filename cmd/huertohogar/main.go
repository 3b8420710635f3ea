package main

import (
	"context"
	"os"
	"time"

	"huertohogar/internal/cli"
	"huertohogar/internal/config"
	"huertohogar/internal/infra"
	"huertohogar/internal/repository"
	"huertohogar/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger. Dev gets pretty output, production gets JSON.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DBPath, cfg.SchemaVersion)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open store")
	}

	// Composition root: the store handle is constructed once here and
	// injected into every repository and service explicitly.
	productoRepo := repository.NewProductoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	app := &cli.App{
		Catalogo: service.NewCatalogoService(productoRepo),
		Cuentas:  service.NewCuentaService(usuarioRepo),
		Pedidos:  service.NewPedidoService(pedidoRepo, productoRepo),
	}

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
