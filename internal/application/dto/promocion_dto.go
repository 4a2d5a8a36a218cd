package dto

import "github.com/shopspring/decimal"

// PromocionRequest alta o modificación de promoción. Fechas YYYY-MM-DD, opcionales.
type PromocionRequest struct {
	IDPromocion int             `json:"id_promocion,omitempty"`
	Descripcion string          `json:"descripcion"`
	FechaInicio string          `json:"fecha_inicio,omitempty"`
	FechaFin    string          `json:"fecha_fin,omitempty"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
	Estado      bool            `json:"estado"`
}

// PromocionResponse promoción tal como se expone por la API.
type PromocionResponse struct {
	IDPromocion int             `json:"id_promocion"`
	Descripcion string          `json:"descripcion"`
	FechaInicio string          `json:"fecha_inicio,omitempty"`
	FechaFin    string          `json:"fecha_fin,omitempty"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
	Estado      bool            `json:"estado"`
}
