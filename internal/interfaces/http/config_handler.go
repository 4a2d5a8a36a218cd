package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/usecase"
)

// ConfigHandler maneja la configuración de empresa y tema (protegido).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get devuelve la configuración vigente.
// GET /api/configuracion
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Get()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, cfg, "")
}

// Update aplica una actualización parcial (empresa y/o tema).
// PUT /api/configuracion (solo ADMIN)
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	cfg, err := h.uc.Actualizar(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, cfg, "configuración actualizada")
}

// Reset vuelve a los valores por defecto.
// DELETE /api/configuracion (solo ADMIN)
func (h *ConfigHandler) Reset(c *fiber.Ctx) error {
	cfg, err := h.uc.Restablecer()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, cfg, "configuración restablecida")
}
