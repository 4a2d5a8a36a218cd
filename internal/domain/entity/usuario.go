package entity

// Roles de usuario de la aplicación.
const (
	RolAdmin    = "ADMIN"
	RolOperario = "OPERARIO"
)

// Usuario cuenta de acceso al sistema. ClaveHash es un hash bcrypt, nunca se expone.
type Usuario struct {
	Usuario   string `json:"usuario"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	ClaveHash string `json:"-"`
	Rol       string `json:"rol"`
}

// Normalizar aplica las reglas de almacenamiento: usuario y rol en mayúsculas,
// nombre y apellido capitalizados.
func (u *Usuario) Normalizar() {
	u.Usuario = normalizarMayusculas(u.Usuario)
	u.Rol = normalizarMayusculas(u.Rol)
	u.Nombre = capitalizar(u.Nombre)
	u.Apellido = capitalizar(u.Apellido)
}
