package billing

import (
	"github.com/shopspring/decimal"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// Redondeo monetario a 2 decimales. El mismo redondeo se usa al crear la
// factura y al recalcular en reportes, de modo que el total almacenado siempre
// coincide con el derivado de subtotal y descuento.
const decimalesMoneda = 2

var cien = decimal.NewFromInt(100)

// CalcularSubtotal suma valor × cantidad de cada línea. Cantidad en cero cuenta como 1.
func CalcularSubtotal(servicios []entity.ServicioFactura) decimal.Decimal {
	subtotal := decimal.Zero
	for _, s := range servicios {
		cantidad := s.Cantidad
		if cantidad.IsZero() {
			cantidad = decimal.NewFromInt(1)
		}
		subtotal = subtotal.Add(s.Valor.Mul(cantidad))
	}
	return subtotal.Round(decimalesMoneda)
}

// AplicarDescuento calcula el valor del descuento y el total resultante.
// Porcentajes fuera de [0, 100] son inválidos.
func AplicarDescuento(subtotal, porcentaje decimal.Decimal) (dto.ValoresFactura, error) {
	if porcentaje.IsNegative() || porcentaje.GreaterThan(cien) {
		return dto.ValoresFactura{}, domain.ErrInvalidInput
	}
	vlrDescuento := subtotal.Mul(porcentaje).Div(cien).Round(decimalesMoneda)
	total := subtotal.Sub(vlrDescuento).Round(decimalesMoneda)
	return dto.ValoresFactura{
		Subtotal:     subtotal,
		Descuento:    porcentaje,
		VlrDescuento: vlrDescuento,
		Total:        total,
	}, nil
}

// AplicarIVA deriva el valor del IVA según la configuración de empresa y
// devuelve el total definitivo.
//
//   - IVA deshabilitado: vlrIVA = 0, total sin cambios.
//   - IVA incluido: el impuesto ya viene dentro del precio; vlrIVA se informa
//     como total × r / (100 + r) y el total no cambia.
//   - IVA no incluido: vlrIVA = total × r / 100 y se suma al total.
func AplicarIVA(total decimal.Decimal, empresa *entity.Empresa) (porcentaje, vlrIVA, nuevoTotal decimal.Decimal) {
	if empresa == nil || !empresa.IVA || empresa.ValorIVA.IsZero() {
		return decimal.Zero, decimal.Zero, total
	}
	r := empresa.ValorIVA
	if empresa.IVAIncluido {
		vlrIVA = total.Mul(r).Div(cien.Add(r)).Round(decimalesMoneda)
		return r, vlrIVA, total
	}
	vlrIVA = total.Mul(r).Div(cien).Round(decimalesMoneda)
	return r, vlrIVA, total.Add(vlrIVA).Round(decimalesMoneda)
}
