package dto

// ClienteRequest alta o modificación de cliente. FecNacimiento en formato YYYY-MM-DD.
type ClienteRequest struct {
	TipoDoc       string `json:"tipo_doc"`
	Documento     string `json:"documento"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	FecNacimiento string `json:"fec_nacimiento"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
}

// ClienteResponse cliente tal como se expone por la API.
type ClienteResponse struct {
	TipoDoc       string `json:"tipo_doc"`
	Documento     string `json:"documento"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	FecNacimiento string `json:"fec_nacimiento"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
}
