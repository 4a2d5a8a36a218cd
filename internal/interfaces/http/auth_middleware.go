package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/pkg/jwt"
)

// Locals keys para usuario y rol en Fiber.
const (
	LocalUsuario = "usuario"
	LocalRol     = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja usuario y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respuestaError(c, domain.ErrUnauthorized)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respuestaError(c, domain.ErrUnauthorized)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respuestaError(c, domain.ErrUnauthorized)
		}
		usuario, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respuestaError(c, domain.ErrUnauthorized)
		}
		c.Locals(LocalUsuario, usuario)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireAdmin exige rol ADMIN; debe ir después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRol(c) != entity.RolAdmin {
			return respuestaError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetUsuario devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del usuario autenticado.
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
