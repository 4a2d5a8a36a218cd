package dto

// RegistrarUsuarioRequest alta de usuario. La clave llega en claro y se hashea con bcrypt.
type RegistrarUsuarioRequest struct {
	Usuario  string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Clave    string `json:"clave"`
	Rol      string `json:"rol"`
}

// ActualizarUsuarioRequest modificación de usuario; con Clave vacía se conserva la actual.
type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Clave    string `json:"clave,omitempty"`
	Rol      string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// UsuarioResponse usuario sin clave, para listados y respuestas.
type UsuarioResponse struct {
	Usuario  string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
