package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/application/usecase"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ServicioHandler maneja los catálogos de servicios generales y adicionales (protegido).
// Los IDs de cada catálogo no se solapan, así que las rutas por ID resuelven
// el catálogo según el rango del identificador.
type ServicioHandler struct {
	uc *usecase.ServicioUseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *usecase.ServicioUseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// List devuelve ambos catálogos.
// GET /api/servicios
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	catalogo, err := h.uc.Listar()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, catalogo, "")
}

// GetByID devuelve un servicio de cualquiera de los dos catálogos.
// GET /api/servicios/:id
func (h *ServicioHandler) GetByID(c *fiber.Ctx) error {
	id, err := idServicio(c)
	if err != nil {
		return errorValidacion(c, "el id de servicio debe ser numérico")
	}
	if esAdicional(id) {
		servicio, err := h.uc.BuscarAdicional(id)
		if err != nil {
			return respuestaError(c, err)
		}
		return respuestaOK(c, fiber.StatusOK, servicio, "")
	}
	servicio, err := h.uc.BuscarGeneral(id)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, servicio, "")
}

// CreateGeneral registra un servicio general de lavado.
// POST /api/servicios/generales
func (h *ServicioHandler) CreateGeneral(c *fiber.Ctx) error {
	var in dto.ServicioGeneralRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	servicio, err := h.uc.CrearGeneral(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, servicio, "servicio creado")
}

// CreateAdicional registra un servicio adicional.
// POST /api/servicios/adicionales
func (h *ServicioHandler) CreateAdicional(c *fiber.Ctx) error {
	var in dto.ServicioAdicionalRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	servicio, err := h.uc.CrearAdicional(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, servicio, "servicio creado")
}

// UpdateGeneral reemplaza un servicio general.
// PUT /api/servicios/generales/:id
func (h *ServicioHandler) UpdateGeneral(c *fiber.Ctx) error {
	id, err := idServicio(c)
	if err != nil {
		return errorValidacion(c, "el id de servicio debe ser numérico")
	}
	var in dto.ServicioGeneralRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	servicio, err := h.uc.ActualizarGeneral(id, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, servicio, "servicio actualizado")
}

// UpdateAdicional reemplaza un servicio adicional.
// PUT /api/servicios/adicionales/:id
func (h *ServicioHandler) UpdateAdicional(c *fiber.Ctx) error {
	id, err := idServicio(c)
	if err != nil {
		return errorValidacion(c, "el id de servicio debe ser numérico")
	}
	var in dto.ServicioAdicionalRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	servicio, err := h.uc.ActualizarAdicional(id, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, servicio, "servicio actualizado")
}

// Delete borra un servicio de cualquiera de los dos catálogos.
// DELETE /api/servicios/:id
func (h *ServicioHandler) Delete(c *fiber.Ctx) error {
	id, err := idServicio(c)
	if err != nil {
		return errorValidacion(c, "el id de servicio debe ser numérico")
	}
	if esAdicional(id) {
		err = h.uc.EliminarAdicional(id)
	} else {
		err = h.uc.EliminarGeneral(id)
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "servicio eliminado")
}

func idServicio(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func esAdicional(id int) bool {
	return id >= entity.IDInicialServicioAdicional
}
