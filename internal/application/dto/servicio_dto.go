package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ServicioGeneralRequest alta o modificación de un servicio general de lavado.
// El ID se asigna al crear; en actualizaciones viene en la ruta.
type ServicioGeneralRequest struct {
	Nombre  string                  `json:"nombre"`
	Valores []entity.CategoriaValor `json:"valores"`
}

// ServicioAdicionalRequest alta o modificación de un servicio adicional.
type ServicioAdicionalRequest struct {
	Nombre         string          `json:"nombre"`
	Categorias     []string        `json:"categorias"`
	PrecioVariable bool            `json:"precio_variable"`
	Variable       string          `json:"variable,omitempty"`
	PrecioBase     decimal.Decimal `json:"precio_base"`
}

// CatalogoServicios ambos catálogos en una sola respuesta.
type CatalogoServicios struct {
	Generales   []*entity.ServicioGeneral   `json:"generales"`
	Adicionales []*entity.ServicioAdicional `json:"adicionales"`
}
