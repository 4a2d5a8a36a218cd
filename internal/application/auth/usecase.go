// Package auth implementa registro, autenticación y gestión de usuarios.
// Las claves se almacenan como hash bcrypt; nunca salen de este paquete.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
	"github.com/spacar/lavadero-api/pkg/jwt"
)

const largoMinimoClave = 4

// UseCase casos de uso de autenticación y cuentas.
type UseCase struct {
	usuarios   repository.UsuarioRepository
	jwtSecret  string
	jwtIssuer  string
	jwtMinutos int
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarios repository.UsuarioRepository, jwtSecret, jwtIssuer string, jwtMinutos int) *UseCase {
	return &UseCase{
		usuarios:   usuarios,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		jwtMinutos: jwtMinutos,
	}
}

// Registrar crea una cuenta nueva; ErrDuplicate si el usuario ya existe.
func (uc *UseCase) Registrar(in dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if strings.TrimSpace(in.Usuario) == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Clave) < largoMinimoClave {
		return nil, domain.ErrInvalidInput
	}
	rol, err := validarRol(in.Rol)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Usuario:   strings.TrimSpace(in.Usuario),
		Nombre:    in.Nombre,
		Apellido:  in.Apellido,
		ClaveHash: string(hash),
		Rol:       rol,
	}
	usuario.Normalizar()
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	return usuarioAResponse(usuario), nil
}

// Login valida las credenciales y devuelve un token JWT.
// Credenciales inválidas y usuario inexistente responden igual para no filtrar cuentas.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.GetByUsuario(strings.ToUpper(strings.TrimSpace(in.Usuario)))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(in.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, usuario.Usuario, usuario.Rol, uc.jwtIssuer, uc.jwtMinutos)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *usuarioAResponse(usuario),
	}, nil
}

// Buscar devuelve el usuario por nombre de cuenta, sin clave.
func (uc *UseCase) Buscar(nombreUsuario string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarios.GetByUsuario(strings.ToUpper(strings.TrimSpace(nombreUsuario)))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return usuarioAResponse(usuario), nil
}

// Listar devuelve todos los usuarios, sin claves.
func (uc *UseCase) Listar() ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarios.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, usuarioAResponse(u))
	}
	return out, nil
}

// Actualizar modifica nombre, apellido, rol y opcionalmente la clave.
// Con Clave vacía se conserva el hash actual.
func (uc *UseCase) Actualizar(nombreUsuario string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	actual, err := uc.usuarios.GetByUsuario(strings.ToUpper(strings.TrimSpace(nombreUsuario)))
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	rol, err := validarRol(in.Rol)
	if err != nil {
		return nil, err
	}
	hash := actual.ClaveHash
	if in.Clave != "" {
		if len(in.Clave) < largoMinimoClave {
			return nil, domain.ErrInvalidInput
		}
		nuevo, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(nuevo)
	}
	usuario := &entity.Usuario{
		Usuario:   actual.Usuario,
		Nombre:    in.Nombre,
		Apellido:  in.Apellido,
		ClaveHash: hash,
		Rol:       rol,
	}
	usuario.Normalizar()
	if err := uc.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	return usuarioAResponse(usuario), nil
}

// Eliminar borra la cuenta por nombre de usuario.
func (uc *UseCase) Eliminar(nombreUsuario string) error {
	return uc.usuarios.Delete(strings.ToUpper(strings.TrimSpace(nombreUsuario)))
}

func validarRol(rol string) (string, error) {
	rol = strings.ToUpper(strings.TrimSpace(rol))
	if rol != entity.RolAdmin && rol != entity.RolOperario {
		return "", domain.ErrInvalidInput
	}
	return rol, nil
}

func usuarioAResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		Usuario:  u.Usuario,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Rol:      u.Rol,
	}
}
