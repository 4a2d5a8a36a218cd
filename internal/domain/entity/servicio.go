package entity

import "github.com/shopspring/decimal"

// IDs iniciales de los catálogos de servicios.
const (
	IDInicialServicioGeneral   = 1000
	IDInicialServicioAdicional = 5000
)

// Tipos de servicio del catálogo.
const (
	TipoServicioGeneral   = "General"
	TipoServicioAdicional = "Adicional"
)

// Unidades válidas para servicios adicionales de precio variable.
var UnidadesVariables = []string{"und", "m2", "lt", "kg"}

// GrupoValor precio de un servicio general para un grupo de vehículo.
type GrupoValor struct {
	ID     int             `json:"id"`
	Precio decimal.Decimal `json:"precio"`
}

// CategoriaValor precios de un servicio general para una categoría de vehículo.
type CategoriaValor struct {
	Categoria string       `json:"categoria"`
	Grupos    []GrupoValor `json:"grupos"`
}

// ServicioGeneral servicio de lavado con tarifa por categoría y grupo.
type ServicioGeneral struct {
	IDServicio   int              `json:"id_servicio"`
	Nombre       string           `json:"nombre"`
	TipoServicio string           `json:"tipo_servicio"`
	Valores      []CategoriaValor `json:"valores"`
}

// ServicioAdicional servicio complementario con precio base, opcionalmente variable por unidad.
type ServicioAdicional struct {
	IDServicio     int             `json:"id_servicio"`
	Nombre         string          `json:"nombre"`
	TipoServicio   string          `json:"tipo_servicio"`
	Categorias     []string        `json:"categorias"`
	PrecioVariable bool            `json:"precio_variable"`
	Variable       string          `json:"variable,omitempty"`
	PrecioBase     decimal.Decimal `json:"precio_base"`
}

// UnidadVariableValida indica si la unidad pertenece al catálogo.
func UnidadVariableValida(u string) bool {
	for _, v := range UnidadesVariables {
		if v == u {
			return true
		}
	}
	return false
}
