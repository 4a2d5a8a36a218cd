package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/usecase"
)

// PromocionHandler maneja las promociones de descuento (protegido).
type PromocionHandler struct {
	uc *usecase.PromocionUseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *usecase.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// List devuelve todas las promociones; con vigentes=true solo las activas hoy.
// GET /api/promociones?vigentes=
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	if c.Query("vigentes") == "true" {
		promociones, err := h.uc.Vigentes(time.Now())
		if err != nil {
			return respuestaError(c, err)
		}
		return respuestaOK(c, fiber.StatusOK, promociones, "")
	}
	promociones, err := h.uc.Listar()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, promociones, "")
}

// GetByID devuelve una promoción por ID.
// GET /api/promociones/:id
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorValidacion(c, "el id de promoción debe ser numérico")
	}
	promocion, err := h.uc.Buscar(id)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, promocion, "")
}

// Create registra una promoción con ID consecutivo.
// POST /api/promociones
func (h *PromocionHandler) Create(c *fiber.Ctx) error {
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	promocion, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, promocion, "promoción creada")
}

// Update reemplaza la promoción identificada por id.
// PUT /api/promociones/:id
func (h *PromocionHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorValidacion(c, "el id de promoción debe ser numérico")
	}
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	promocion, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, promocion, "promoción actualizada")
}

// Delete borra la promoción.
// DELETE /api/promociones/:id
func (h *PromocionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorValidacion(c, "el id de promoción debe ser numérico")
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "promoción eliminada")
}
