package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List devuelve todos los clientes.
// GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.uc.Listar()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, clientes, "")
}

// GetByDocumento devuelve un cliente por documento.
// GET /api/clientes/:documento
func (h *ClienteHandler) GetByDocumento(c *fiber.Ctx) error {
	cliente, err := h.uc.Buscar(c.Params("documento"))
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, cliente, "")
}

// Create registra un cliente nuevo.
// POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	cliente, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, cliente, "cliente creado")
}

// Update reemplaza los datos del cliente. El documento viene en la ruta.
// PUT /api/clientes/:documento
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	in.Documento = c.Params("documento")
	cliente, err := h.uc.Actualizar(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, cliente, "cliente actualizado")
}

// Delete borra el cliente.
// DELETE /api/clientes/:documento
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("documento")); err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "cliente eliminado")
}
