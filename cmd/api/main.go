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

	_ "github.com/Doarmfando/Inventario-Cevi-sub000/docs"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/analytics"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/auth"
	appinv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/reportes"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/usecase"
	infrapdf "github.com/Doarmfando/Inventario-Cevi-sub000/internal/infrastructure/pdf"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Doarmfando/Inventario-Cevi-sub000/internal/interfaces/http"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/config"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/logger"
)

// @title        Inventario Cevi API
// @version      1.0
// @description  API de gestión de inventario para restaurante.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Int("umbral_por_vencer_dias", cfg.Inventario.UmbralPorVencerDias).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	contenedorRepo := postgres.NewContenedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	registroRepo := postgres.NewContenedorProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	resumenRepo := postgres.NewResumenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	umbral := cfg.Inventario.UmbralPorVencerDias

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	contenedorUC := usecase.NewContenedorUseCase(contenedorRepo, registroRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	registroUC := usecase.NewRegistroUseCase(registroRepo, contenedorRepo, umbral)
	registerMovUC := appinv.NewRegisterMovimientoUseCase(txRunner, productoRepo, contenedorRepo, log, umbral)
	kardexUC := appinv.NewKardexUseCase(movimientoRepo, productoRepo, contenedorRepo)
	reconcileUC := appinv.NewReconcileUseCase(registroRepo, contenedorRepo, log, umbral)
	dashboardUC := analytics.NewDashboardUseCase(resumenRepo, contenedorRepo, umbral)

	// PDF: reporte kardex imprimible
	pdfGenerator := infrapdf.NewMarotoKardexGenerator()
	kardexReportUC := reportes.NewKardexReportUseCase(movimientoRepo, productoRepo, contenedorRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Cevi API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ContenedorUC: contenedorUC,
		ProductoUC:   productoUC,
		RegistroUC:   registroUC,
		RegisterMov:  registerMovUC,
		KardexUC:     kardexUC,
		ReconcileUC:  reconcileUC,
		DashboardUC:  dashboardUC,
		KardexReport: kardexReportUC,
		JWTSecret:    cfg.JWT.Secret,
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
