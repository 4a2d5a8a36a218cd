package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/spacar/lavadero-api/internal/application/auth"
	"github.com/spacar/lavadero-api/internal/application/billing"
	"github.com/spacar/lavadero-api/internal/application/reporting"
	"github.com/spacar/lavadero-api/internal/application/usecase"
	"github.com/spacar/lavadero-api/internal/infrastructure/flatfile"
	infrapdf "github.com/spacar/lavadero-api/internal/infrastructure/pdf"
	httpRouter "github.com/spacar/lavadero-api/internal/interfaces/http"
	"github.com/spacar/lavadero-api/pkg/config"
	"github.com/spacar/lavadero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("datos", cfg.Datos.Dir).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Datos.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de datos")
	}

	// Repositorios sobre archivos planos
	clienteRepo := flatfile.NewClienteRepository(cfg.Datos.RutaClientes())
	vehiculoRepo := flatfile.NewVehiculoRepository(cfg.Datos.RutaVehiculos())
	facturaRepo := flatfile.NewFacturaRepository(cfg.Datos.RutaFacturas())
	usuarioRepo := flatfile.NewUsuarioRepository(cfg.Datos.RutaUsuarios())
	promocionRepo := flatfile.NewPromocionRepository(cfg.Datos.RutaPromociones())
	servicioRepo := flatfile.NewServicioRepository(
		cfg.Datos.RutaServiciosGenerales(),
		cfg.Datos.RutaServiciosAdicionales(),
	)
	configStore := flatfile.NewConfigStore(cfg.Datos.RutaConfigEmpresa())

	// Casos de uso
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo, clienteRepo)
	servicioUC := usecase.NewServicioUseCase(servicioRepo)
	promocionUC := usecase.NewPromocionUseCase(promocionRepo)
	configUC := usecase.NewConfigUseCase(configStore)
	facturaUC := billing.NewFacturaUseCase(facturaRepo, configStore)
	reporteUC := reporting.NewReporteUseCase(facturaRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// Recibo de venta en PDF
	reciboUC := billing.NewReciboUseCase(facturaRepo, configStore, infrapdf.NewGeneradorMaroto())

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
		ClienteUC:   clienteUC,
		VehiculoUC:  vehiculoUC,
		ServicioUC:  servicioUC,
		PromocionUC: promocionUC,
		ConfigUC:    configUC,
		FacturaUC:   facturaUC,
		ReciboUC:    reciboUC,
		ReporteUC:   reporteUC,
		AuthUC:      authUC,
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

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
