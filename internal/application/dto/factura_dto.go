package dto

import "github.com/shopspring/decimal"

// ServicioFacturaRequest una línea de servicio en la petición de factura.
// Servicio en cero se interpreta como "sin especificar". Cantidad ausente
// vale 1; si viene explícita debe ser positiva.
type ServicioFacturaRequest struct {
	Servicio    int              `json:"servicio"`
	Cantidad    *decimal.Decimal `json:"cantidad,omitempty"`
	Descripcion string           `json:"descripcion"`
	Valor       decimal.Decimal  `json:"valor"`
}

// CrearFacturaRequest cuerpo de creación/actualización de factura.
// Los totales no se reciben: siempre se derivan de las líneas y el descuento.
type CrearFacturaRequest struct {
	Fecha     string                   `json:"fecha"` // RFC3339 o YYYY-MM-DD
	Placa     string                   `json:"placa"`
	Categoria string                   `json:"categoria"`
	Grupo     int                      `json:"grupo"`
	IDCliente string                   `json:"id_cliente"`
	MedioPago string                   `json:"medio_pago"`
	Descuento decimal.Decimal          `json:"descuento"` // porcentaje 0-100
	Servicios []ServicioFacturaRequest `json:"servicios"`
}

// ServicioFacturaResponse una línea de servicio en las respuestas.
type ServicioFacturaResponse struct {
	Servicio    int             `json:"servicio"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Descripcion string          `json:"descripcion"`
	Valor       decimal.Decimal `json:"valor"`
}

// FacturaResponse factura completa tal como la consume el frontend.
type FacturaResponse struct {
	Factura      int                       `json:"factura"`
	Fecha        string                    `json:"fecha"`
	Placa        string                    `json:"placa"`
	Categoria    string                    `json:"categoria"`
	Grupo        int                       `json:"grupo"`
	Cliente      string                    `json:"cliente"`
	MedioPago    string                    `json:"medio_pago"`
	IVA          decimal.Decimal           `json:"iva"`
	VlrIVA       decimal.Decimal           `json:"vlr_iva"`
	Descuento    decimal.Decimal           `json:"descuento"`
	VlrDescuento decimal.Decimal           `json:"vlr_descuento"`
	Bruto        decimal.Decimal           `json:"bruto"`
	Subtotal     decimal.Decimal           `json:"subtotal"`
	Total        decimal.Decimal           `json:"total"`
	Servicios    []ServicioFacturaResponse `json:"servicios"`
}

// ValoresFactura resultado del cálculo de subtotal y descuento.
type ValoresFactura struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Descuento    decimal.Decimal `json:"descuento"`
	VlrDescuento decimal.Decimal `json:"vlr_descuento"`
	Total        decimal.Decimal `json:"total"`
}
