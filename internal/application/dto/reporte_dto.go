package dto

import "github.com/shopspring/decimal"

// VentasMedioPago ventas acumuladas de un medio de pago canónico (TR, TD, TC, EF).
type VentasMedioPago struct {
	MedioPago      string          `json:"medio_pago"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	NumeroFacturas int             `json:"numero_facturas"`
}

// VentasCategoria ventas de una categoría de vehículo dentro de un día.
type VentasCategoria struct {
	Categoria      string          `json:"categoria"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	NumeroFacturas int             `json:"numero_facturas"`
}

// VentasDiarias ventas de un día con desglose por categoría canónica.
type VentasDiarias struct {
	Fecha          string            `json:"fecha"`
	TotalVentas    decimal.Decimal   `json:"total_ventas"`
	NumeroFacturas int               `json:"numero_facturas"`
	Categorias     []VentasCategoria `json:"categorias"`
}

// ResumenVentas resumen agregado del rango consultado. Los medios de pago
// canónicos siempre están presentes, en ceros si no hay datos.
type ResumenVentas struct {
	FechaInicio      string            `json:"fecha_inicio,omitempty"`
	FechaFin         string            `json:"fecha_fin,omitempty"`
	TotalVentas      decimal.Decimal   `json:"total_ventas"`
	NumeroFacturas   int               `json:"numero_facturas"`
	VentasMediosPago []VentasMedioPago `json:"ventas_medios_pago"`
	VentasDiarias    []VentasDiarias   `json:"ventas_diarias"`
}
