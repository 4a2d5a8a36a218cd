package entity

import "time"

// Tipos de documento de identidad aceptados.
var TiposDocumento = []string{"CC", "NIT", "CE", "PP", "TI"}

// Cliente es el dueño de uno o más vehículos registrados en el lavadero.
type Cliente struct {
	TipoDoc       string    `json:"tipo_doc"`
	Documento     string    `json:"documento"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	FecNacimiento time.Time `json:"-"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
}

// TipoDocumentoValido indica si el tipo de documento pertenece al catálogo.
func TipoDocumentoValido(t string) bool {
	for _, v := range TiposDocumento {
		if v == t {
			return true
		}
	}
	return false
}

// Normalizar capitaliza nombre y apellido como se almacenan en el archivo.
func (c *Cliente) Normalizar() {
	c.Nombre = capitalizar(c.Nombre)
	c.Apellido = capitalizar(c.Apellido)
}
