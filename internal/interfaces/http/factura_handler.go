package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/billing"
	"github.com/spacar/lavadero-api/internal/application/dto"
)

// FacturaHandler maneja las peticiones HTTP de facturación (protegido).
type FacturaHandler struct {
	uc      *billing.FacturaUseCase
	recibos *billing.ReciboUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *billing.FacturaUseCase, recibos *billing.ReciboUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc, recibos: recibos}
}

// List devuelve todas las facturas, o una sola con el query param factura_id.
// GET /api/facturas
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("factura_id"); raw != "" {
		numero, err := strconv.Atoi(raw)
		if err != nil {
			return errorValidacion(c, "factura_id debe ser numérico")
		}
		factura, err := h.uc.GetByNumero(numero)
		if err != nil {
			return respuestaError(c, err)
		}
		return respuestaOK(c, fiber.StatusOK, factura, "")
	}
	facturas, err := h.uc.GetAll()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, facturas, "")
}

// GetByNumero devuelve una factura por número.
// GET /api/facturas/:id
func (h *FacturaHandler) GetByNumero(c *fiber.Ctx) error {
	numero, err := numeroFactura(c)
	if err != nil {
		return errorValidacion(c, "el número de factura debe ser numérico")
	}
	factura, err := h.uc.GetByNumero(numero)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, factura, "")
}

// Create crea una factura con numeración consecutiva y totales calculados en servidor.
// POST /api/facturas
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	factura, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, factura, "factura creada")
}

// Update reemplaza la factura conservando su número.
// PUT /api/facturas/:id
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	numero, err := numeroFactura(c)
	if err != nil {
		return errorValidacion(c, "el número de factura debe ser numérico")
	}
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	factura, err := h.uc.Actualizar(numero, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, factura, "factura actualizada")
}

// Delete elimina la factura y todas sus líneas.
// DELETE /api/facturas/:id
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	numero, err := numeroFactura(c)
	if err != nil {
		return errorValidacion(c, "el número de factura debe ser numérico")
	}
	if err := h.uc.Eliminar(numero); err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "factura eliminada")
}

// Recibo genera el recibo de venta en PDF.
// GET /api/facturas/:id/recibo
func (h *FacturaHandler) Recibo(c *fiber.Ctx) error {
	numero, err := numeroFactura(c)
	if err != nil {
		return errorValidacion(c, "el número de factura debe ser numérico")
	}
	pdf, err := h.recibos.Generar(numero)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo_%d.pdf"`, numero))
	return c.Send(pdf)
}

func numeroFactura(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
