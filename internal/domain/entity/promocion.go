package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion descuento porcentual vigente entre dos fechas.
type Promocion struct {
	IDPromocion int             `json:"id_promocion"`
	Descripcion string          `json:"descripcion"`
	FechaInicio *time.Time      `json:"-"`
	FechaFin    *time.Time      `json:"-"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
	Estado      bool            `json:"estado"`
}

// Vigente indica si la promoción está activa y la fecha dada cae dentro de su rango.
func (p Promocion) Vigente(fecha time.Time) bool {
	if !p.Estado {
		return false
	}
	dia := fecha.Truncate(24 * time.Hour)
	if p.FechaInicio != nil && dia.Before(p.FechaInicio.Truncate(24*time.Hour)) {
		return false
	}
	if p.FechaFin != nil && dia.After(p.FechaFin.Truncate(24*time.Hour)) {
		return false
	}
	return true
}
