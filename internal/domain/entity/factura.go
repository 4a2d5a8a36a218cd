package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Numeración de facturas: la primera factura emitida recibe NumeroInicialFactura.
const NumeroInicialFactura = 10000

// IDServicioSinEspecificar se usa cuando la línea no referencia un servicio del catálogo.
const IDServicioSinEspecificar = 9999

// Factura representa una venta del lavadero: cabecera más una o varias líneas de servicio.
type Factura struct {
	Numero       int
	Fecha        time.Time
	Placa        string
	Categoria    string
	Grupo        int
	IDCliente    string
	MedioPago    string
	IVA          decimal.Decimal // porcentaje
	VlrIVA       decimal.Decimal
	Descuento    decimal.Decimal // porcentaje 0-100
	VlrDescuento decimal.Decimal
	Bruto        decimal.Decimal
	Subtotal     decimal.Decimal
	Total        decimal.Decimal
	Servicios    []ServicioFactura
}

// ServicioFactura es una línea de detalle de la factura.
type ServicioFactura struct {
	IDServicio  int
	Cantidad    decimal.Decimal
	Descripcion string
	Valor       decimal.Decimal
}

// Normalizar aplica las reglas de presentación de la cabecera: placa en mayúsculas,
// categoría capitalizada, medio de pago en mayúsculas y defaults de las líneas.
func (f *Factura) Normalizar() {
	f.Placa = normalizarMayusculas(f.Placa)
	f.Categoria = capitalizar(f.Categoria)
	f.MedioPago = normalizarMayusculas(f.MedioPago)
	for i := range f.Servicios {
		if f.Servicios[i].IDServicio == 0 {
			f.Servicios[i].IDServicio = IDServicioSinEspecificar
		}
		if f.Servicios[i].Cantidad.IsZero() {
			f.Servicios[i].Cantidad = decimal.NewFromInt(1)
		}
	}
}
