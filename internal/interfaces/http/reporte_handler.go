package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/billing"
	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/reporting"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ReporteHandler maneja las consultas de ventas (protegido).
type ReporteHandler struct {
	uc *reporting.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporting.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// List devuelve las facturas del rango de fechas (ambas o ninguna).
// GET /api/reportes?fecha_inicio=&fecha_fin=
func (h *ReporteHandler) List(c *fiber.Ctx) error {
	facturas, err := h.uc.GetAll(reporting.Filtro{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
	})
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, facturasAResponses(facturas), "")
}

// PorCliente devuelve las facturas de un cliente, opcionalmente acotadas por fechas.
// GET /api/reportes/cliente?cedula_cliente=&fecha_inicio=&fecha_fin=
func (h *ReporteHandler) PorCliente(c *fiber.Ctx) error {
	cedula := c.Query("cedula_cliente")
	if cedula == "" {
		return errorValidacion(c, "cedula_cliente es requerido")
	}
	facturas, err := h.uc.GetAll(reporting.Filtro{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
		IDCliente:   cedula,
	})
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, facturasAResponses(facturas), "")
}

// PorMedioPago devuelve las facturas cuyo medio de pago contiene el valor dado.
// GET /api/reportes/medio_pago?medio_pago=
func (h *ReporteHandler) PorMedioPago(c *fiber.Ctx) error {
	medio := c.Query("medio_pago")
	if medio == "" {
		return errorValidacion(c, "medio_pago es requerido")
	}
	facturas, err := h.uc.GetByMedioPago(medio)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, facturasAResponses(facturas), "")
}

// PorPlaca devuelve el historial de lavados de una placa.
// GET /api/reportes/placa?placa=
func (h *ReporteHandler) PorPlaca(c *fiber.Ctx) error {
	placa := c.Query("placa")
	if placa == "" {
		return errorValidacion(c, "placa es requerida")
	}
	facturas, err := h.uc.GetByPlaca(placa)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, facturasAResponses(facturas), "")
}

// Resumen devuelve el agregado de ventas por medio de pago y por día.
// GET /api/reportes/resumen?fecha_inicio=&fecha_fin=
func (h *ReporteHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.GetResumen(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, resumen, "")
}

func facturasAResponses(facturas []*entity.Factura) []*dto.FacturaResponse {
	out := make([]*dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, billing.ToFacturaResponse(f))
	}
	return out
}
