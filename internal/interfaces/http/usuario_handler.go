package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/application/auth"
	"github.com/spacar/lavadero-api/internal/application/dto"
)

// UsuarioHandler maneja las cuentas de acceso y el login.
type UsuarioHandler struct {
	uc *auth.UseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *auth.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Login valida credenciales y devuelve un token JWT.
// POST /api/usuarios/login (público)
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	sesion, err := h.uc.Login(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, sesion, "autenticación exitosa")
}

// Registrar crea una cuenta nueva.
// POST /api/usuarios (solo ADMIN)
func (h *UsuarioHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	usuario, err := h.uc.Registrar(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusCreated, usuario, "usuario registrado")
}

// List devuelve todos los usuarios sin claves.
// GET /api/usuarios (solo ADMIN)
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.Listar()
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, usuarios, "")
}

// GetByUsuario devuelve una cuenta por nombre de usuario.
// GET /api/usuarios/:usuario (solo ADMIN)
func (h *UsuarioHandler) GetByUsuario(c *fiber.Ctx) error {
	usuario, err := h.uc.Buscar(c.Params("usuario"))
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, usuario, "")
}

// Update modifica nombre, apellido, rol y opcionalmente la clave.
// PUT /api/usuarios/:usuario (solo ADMIN)
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return errorValidacion(c, "cuerpo inválido")
	}
	usuario, err := h.uc.Actualizar(c.Params("usuario"), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, usuario, "usuario actualizado")
}

// Delete borra la cuenta.
// DELETE /api/usuarios/:usuario (solo ADMIN)
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("usuario")); err != nil {
		return respuestaError(c, err)
	}
	return respuestaOK(c, fiber.StatusOK, nil, "usuario eliminado")
}
