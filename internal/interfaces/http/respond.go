package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
)

// respuestaOK envía el sobre de éxito con el código HTTP dado.
func respuestaOK(c *fiber.Ctx, code int, data interface{}, message string) error {
	return c.Status(code).JSON(dto.SuccessResponse{
		Status:  "success",
		Code:    code,
		Data:    data,
		Message: message,
	})
}

// respuestaError traduce un error de dominio al sobre de error y al código HTTP
// correspondiente. Errores no reconocidos responden 500 sin exponer detalles.
func respuestaError(c *fiber.Ctx, err error) error {
	tipo, code := clasificarError(err)
	mensaje := err.Error()
	if code == fiber.StatusInternalServerError {
		mensaje = "error interno del servidor"
	}
	return c.Status(code).JSON(dto.ErrorResponse{
		Status:  "error",
		Type:    tipo,
		Message: mensaje,
		Code:    code,
	})
}

// errorValidacion responde 400 con un mensaje explícito (cuerpos mal formados, params inválidos).
func errorValidacion(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Status:  "error",
		Type:    "ValidacionError",
		Message: mensaje,
		Code:    fiber.StatusBadRequest,
	})
}

func clasificarError(err error) (tipo string, code int) {
	switch {
	case errors.Is(err, domain.ErrFormatoFecha):
		return "FormatoFechaError", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRangoFechas):
		return "RangoFechasError", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrClienteNoRegistrado):
		return "ClienteNoRegistradoError", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidInput):
		return "ValidacionError", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUsuarioNotFound):
		return "UsuarioNoEncontradoError", fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotFound):
		return "NoEncontradoError", fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return "DuplicadoError", fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return "AutenticacionError", fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return "AutorizacionError", fiber.StatusForbidden
	default:
		return "ServidorError", fiber.StatusInternalServerError
	}
}
