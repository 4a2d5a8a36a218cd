package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (clave: usuario, en mayúsculas).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	// GetByUsuario devuelve nil, nil si el usuario no existe.
	GetByUsuario(usuario string) (*entity.Usuario, error)
	GetAll() ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Delete(usuario string) error
}
