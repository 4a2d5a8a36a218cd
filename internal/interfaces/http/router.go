package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/auth"
	"github.com/spacar/lavadero-api/internal/application/billing"
	"github.com/spacar/lavadero-api/internal/application/reporting"
	"github.com/spacar/lavadero-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *usecase.ClienteUseCase
	VehiculoUC  *usecase.VehiculoUseCase
	ServicioUC  *usecase.ServicioUseCase
	PromocionUC *usecase.PromocionUseCase
	ConfigUC    *usecase.ConfigUseCase
	FacturaUC   *billing.FacturaUseCase
	ReciboUC    *billing.ReciboUseCase
	ReporteUC   *reporting.ReporteUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)
	api.Post("/usuarios/login", usuarioHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo ADMIN)
	usuarios := protected.Group("/usuarios", RequireAdmin())
	usuarios.Post("/", usuarioHandler.Registrar)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:usuario", usuarioHandler.GetByUsuario)
	usuarios.Put("/:usuario", usuarioHandler.Update)
	usuarios.Delete("/:usuario", usuarioHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:documento", clienteHandler.GetByDocumento)
	clientes.Put("/:documento", clienteHandler.Update)
	clientes.Delete("/:documento", clienteHandler.Delete)

	// Vehículos (protegido)
	vehiculos := protected.Group("/vehiculos")
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Post("/", vehiculoHandler.Create)
	vehiculos.Get("/:placa", vehiculoHandler.GetByPlaca)
	vehiculos.Put("/:placa", vehiculoHandler.Update)
	vehiculos.Delete("/:placa", vehiculoHandler.Delete)

	// Servicios (protegido)
	servicios := protected.Group("/servicios")
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	servicios.Get("/", servicioHandler.List)
	servicios.Post("/generales", servicioHandler.CreateGeneral)
	servicios.Post("/adicionales", servicioHandler.CreateAdicional)
	servicios.Put("/generales/:id", servicioHandler.UpdateGeneral)
	servicios.Put("/adicionales/:id", servicioHandler.UpdateAdicional)
	servicios.Get("/:id", servicioHandler.GetByID)
	servicios.Delete("/:id", servicioHandler.Delete)

	// Promociones (protegido)
	promociones := protected.Group("/promociones")
	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	promociones.Get("/", promocionHandler.List)
	promociones.Post("/", promocionHandler.Create)
	promociones.Get("/:id", promocionHandler.GetByID)
	promociones.Put("/:id", promocionHandler.Update)
	promociones.Delete("/:id", promocionHandler.Delete)

	// Facturas (protegido)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.ReciboUC)
	facturas.Get("/", facturaHandler.List)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/:id/recibo", facturaHandler.Recibo)
	facturas.Get("/:id", facturaHandler.GetByNumero)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Delete("/:id", facturaHandler.Delete)

	// Reportes (protegido)
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/", reporteHandler.List)
	reportes.Get("/cliente", reporteHandler.PorCliente)
	reportes.Get("/medio_pago", reporteHandler.PorMedioPago)
	reportes.Get("/placa", reporteHandler.PorPlaca)
	reportes.Get("/resumen", reporteHandler.Resumen)

	// Configuración (lectura protegida, escritura solo ADMIN)
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/configuracion", configHandler.Get)
	protected.Put("/configuracion", RequireAdmin(), configHandler.Update)
	protected.Delete("/configuracion", RequireAdmin(), configHandler.Reset)
}
