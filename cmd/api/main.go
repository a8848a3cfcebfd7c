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

	"github.com/tu-usuario/ferreteria-pos/internal/application/auth"
	"github.com/tu-usuario/ferreteria-pos/internal/application/reports"
	"github.com/tu-usuario/ferreteria-pos/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pos/internal/application/usecase"
	infrapdf "github.com/tu-usuario/ferreteria-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/ferreteria-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ferreteria-pos/internal/interfaces/http"
	"github.com/tu-usuario/ferreteria-pos/pkg/config"
	"github.com/tu-usuario/ferreteria-pos/pkg/logger"
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

	// Esquema + usuario admin inicial (idempotente)
	adminEmail := envOr("ADMIN_EMAIL", "admin@ferreteria.local")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")
	if err := postgres.EnsureSchema(ctx, pool, adminEmail, adminPassword); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, userRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, productRepo, customerRepo, userRepo, receiptGenerator, sales.StoreInfo{
		Name:    cfg.POS.StoreName,
		Address: cfg.POS.StoreAddress,
		Phone:   cfg.POS.StorePhone,
	})
	dashboardUC := reports.NewDashboardUseCase(reportRepo, cfg.POS.LowStockLimit)

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
		Title:    "Ferretería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		AuthUC:      authUC,
		SaleUC:      saleUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
