package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/usecase"
)

// VehiculoHandler maneja las peticiones HTTP de vehículos (protegido).
type VehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewVehiculoHandler construye el handler.
func NewVehiculoHandler(uc *usecase.VehiculoUseCase) *VehiculoHandler {
	return &VehiculoHandler{uc: uc}
}

// List devuelve todos los vehículos; con documento_cliente filtra por dueño.
// GET /api/vehiculos?documento_cliente=
func (h *VehiculoHandler) List(c *fiber.Ctx) error {
	vehiculos, err := h.uc.Listar(c.Query("documento_cliente"))
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, vehiculos, "")
}

// GetByPlaca devuelve un vehículo por placa.
// GET /api/vehiculos/:placa
func (h *VehiculoHandler) GetByPlaca(c *fiber.Ctx) error {
	vehiculo, err := h.uc.Buscar(c.Params("placa"))
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, vehiculo, "")
}

// Create registra un vehículo; el cliente debe existir.
// POST /api/vehiculos
func (h *VehiculoHandler) Create(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	vehiculo, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, vehiculo, "vehículo creado")
}

// Update reemplaza los datos del vehículo. La placa viene en la ruta.
// PUT /api/vehiculos/:placa
func (h *VehiculoHandler) Update(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	in.Placa = c.Params("placa")
	vehiculo, err := h.uc.Actualizar(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, vehiculo, "vehículo actualizado")
}

// Delete borra el vehículo.
// DELETE /api/vehiculos/:placa
func (h *VehiculoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("placa")); err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "vehículo eliminado")
}
