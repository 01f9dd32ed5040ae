package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Cocina-api/internal/application/analytics"
	"github.com/jhoicas/Cocina-api/internal/application/auth"
	"github.com/jhoicas/Cocina-api/internal/application/inventory"
	"github.com/jhoicas/Cocina-api/internal/application/supplier"
	"github.com/jhoicas/Cocina-api/internal/infrastructure/mongodb"
	appgraphql "github.com/jhoicas/Cocina-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/Cocina-api/internal/interfaces/http"
	"github.com/jhoicas/Cocina-api/pkg/config"
	"github.com/jhoicas/Cocina-api/pkg/logger"
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
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	ingredientRepo := mongodb.NewIngredientRepository(db)
	movementRepo := mongodb.NewMovementRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	txRunner := mongodb.NewTxRunner(client, ingredientRepo, movementRepo)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, ingredientRepo, movementRepo)
	ingredientUC := inventory.NewIngredientUseCase(ingredientRepo)
	supplierUC := supplier.New(supplierRepo)
	dashboardUC := analytics.NewDashboardUseCase(ingredientRepo, movementRepo)

	resolver := appgraphql.NewResolver(ledgerUC, ingredientUC, supplierUC, dashboardUC)
	schema := appgraphql.MustSchema(resolver)
	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:   schema,
		Verifier: verifier,
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
