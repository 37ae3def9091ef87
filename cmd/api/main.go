package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/eustachekamala/virunga-inventory/internal/application/usecase"
	infracache "github.com/eustachekamala/virunga-inventory/internal/infrastructure/cache"
	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/notify"
	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/postgres"
	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/scheduler"
	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/storage"
	"github.com/eustachekamala/virunga-inventory/pkg/config"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)

	// Caché distribuida con caída a memoria si Redis no responde al arranque.
	productCache := infracache.New(cfg.Redis, log)

	notifier := notify.NewMailNotifier(cfg.Mail, log)
	fileStorage := storage.NewLocalStorage("./uploads")

	// Caso de uso de inventario: lo monta el transporte (gateway HTTP) que
	// consume este servicio. Aquí se construye para validar el cableado.
	productUC := usecase.NewProductUseCase(
		productRepo, productCache, fileStorage, notifier, cfg.Stock.AlertEmail, log,
	)

	if cfg.Stock.SeedSampleData {
		seedUC := usecase.NewSeedUseCase(productRepo, log)
		if err := seedUC.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo de ejemplo")
		}
		// Calienta la región de lista tras la carga inicial.
		if _, err := productUC.List(ctx); err != nil {
			log.Error().Err(err).Msg("precargar lista de productos")
		}
	}

	reconcileUC := usecase.NewReconcileUseCase(
		productRepo, productCache, notifier, cfg.Stock.AlertEmail, log,
	)

	sched := scheduler.New(log)
	err = sched.Every(cfg.Stock.ReconcileInterval, "stock-reconcile", func() {
		if err := reconcileUC.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("reconciliación de stock")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("programar reconciliación")
	}
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando aplicación")
	sched.Stop()
}
