package flatfile

import (
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

var columnasUsuarios = []string{"USUARIO", "NOMBRE", "APELLIDO", "CLAVE", "ROL"}

// UsuarioRepo implementación de UsuarioRepository sobre usuarios.csv.
// La columna CLAVE guarda el hash bcrypt, nunca la clave en claro.
type UsuarioRepo struct {
	tabla *Tabla
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(ruta string) *UsuarioRepo {
	return &UsuarioRepo{tabla: NuevaTabla(ruta, columnasUsuarios)}
}

// Create agrega el usuario; falla con ErrDuplicate si ya existe.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for _, reg := range registros {
			if reg["USUARIO"] == usuario.Usuario {
				return nil, domain.ErrDuplicate
			}
		}
		return append(registros, filaDeUsuario(usuario)), nil
	})
}

// GetByUsuario devuelve nil, nil si el usuario no existe.
func (r *UsuarioRepo) GetByUsuario(nombre string) (*entity.Usuario, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	for _, reg := range registros {
		if reg["USUARIO"] == nombre {
			return usuarioDeFila(reg), nil
		}
	}
	return nil, nil
}

// GetAll devuelve todos los usuarios en el orden del archivo.
func (r *UsuarioRepo) GetAll() ([]*entity.Usuario, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	usuarios := make([]*entity.Usuario, 0, len(registros))
	for _, reg := range registros {
		usuarios = append(usuarios, usuarioDeFila(reg))
	}
	return usuarios, nil
}

// Update reemplaza la fila del usuario; ErrNotFound si no existe.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if reg["USUARIO"] == usuario.Usuario {
				registros[i] = filaDeUsuario(usuario)
				return registros, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la fila del usuario; ErrNotFound si no existe.
func (r *UsuarioRepo) Delete(nombre string) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if reg["USUARIO"] == nombre {
				return append(registros[:i], registros[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func filaDeUsuario(u *entity.Usuario) Registro {
	return Registro{
		"USUARIO":  u.Usuario,
		"NOMBRE":   u.Nombre,
		"APELLIDO": u.Apellido,
		"CLAVE":    u.ClaveHash,
		"ROL":      u.Rol,
	}
}

func usuarioDeFila(reg Registro) *entity.Usuario {
	return &entity.Usuario{
		Usuario:   reg["USUARIO"],
		Nombre:    reg["NOMBRE"],
		Apellido:  reg["APELLIDO"],
		ClaveHash: reg["CLAVE"],
		Rol:       reg["ROL"],
	}
}
