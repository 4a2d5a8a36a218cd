package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// MediosPagoCanonicos desglose fijo del resumen: transferencia, tarjeta débito,
// tarjeta crédito y efectivo. Siempre presentes en la respuesta, en ceros si
// no hay ventas. El medio de pago almacenado se trunca a sus dos primeros
// caracteres para la clasificación.
var MediosPagoCanonicos = []string{"TR", "TD", "TC", "EF"}

type acumulado struct {
	total    decimal.Decimal
	facturas map[int]struct{}
}

func nuevoAcumulado() *acumulado {
	return &acumulado{total: decimal.Zero, facturas: make(map[int]struct{})}
}

func (a *acumulado) sumar(numeroFactura int, valor decimal.Decimal) {
	a.total = a.total.Add(valor)
	a.facturas[numeroFactura] = struct{}{}
}

// valorLinea es el aporte de una línea al total: valor por cantidad, con
// cantidad cero interpretada como una unidad (misma regla que el subtotal
// de la factura).
func valorLinea(linea entity.ServicioFactura) decimal.Decimal {
	cantidad := linea.Cantidad
	if cantidad.IsZero() {
		cantidad = decimal.NewFromInt(1)
	}
	return linea.Valor.Mul(cantidad)
}

// construirResumen agrega línea por línea: el total de ventas es la suma de
// valor por cantidad de cada línea y el número de facturas cuenta números
// distintos. Cuando no hay datos devuelve el esqueleto con todos los buckets
// canónicos en cero.
func construirResumen(facturas []*entity.Factura) *dto.ResumenVentas {
	general := nuevoAcumulado()
	porMedio := make(map[string]*acumulado, len(MediosPagoCanonicos))
	for _, mp := range MediosPagoCanonicos {
		porMedio[mp] = nuevoAcumulado()
	}
	porDia := make(map[string]*acumulado)
	porDiaCategoria := make(map[string]map[string]*acumulado)

	for _, f := range facturas {
		dia := f.Fecha.Format(formatoFechaFiltro)
		medio := f.MedioPago
		if len(medio) > 2 {
			medio = medio[:2]
		}
		for _, linea := range f.Servicios {
			valor := valorLinea(linea)
			general.sumar(f.Numero, valor)

			if acc, ok := porMedio[medio]; ok {
				acc.sumar(f.Numero, valor)
			}

			if _, ok := porDia[dia]; !ok {
				porDia[dia] = nuevoAcumulado()
				porDiaCategoria[dia] = make(map[string]*acumulado, len(entity.CategoriasVehiculo))
				for _, cat := range entity.CategoriasVehiculo {
					porDiaCategoria[dia][cat] = nuevoAcumulado()
				}
			}
			porDia[dia].sumar(f.Numero, valor)
			if acc, ok := porDiaCategoria[dia][f.Categoria]; ok {
				acc.sumar(f.Numero, valor)
			}
		}
	}

	resumen := &dto.ResumenVentas{
		TotalVentas:      general.total,
		NumeroFacturas:   len(general.facturas),
		VentasMediosPago: make([]dto.VentasMedioPago, 0, len(MediosPagoCanonicos)),
		VentasDiarias:    make([]dto.VentasDiarias, 0, len(porDia)),
	}

	for _, mp := range MediosPagoCanonicos {
		acc := porMedio[mp]
		resumen.VentasMediosPago = append(resumen.VentasMediosPago, dto.VentasMedioPago{
			MedioPago:      mp,
			TotalVentas:    acc.total,
			NumeroFacturas: len(acc.facturas),
		})
	}

	dias := make([]string, 0, len(porDia))
	for dia := range porDia {
		dias = append(dias, dia)
	}
	sort.Strings(dias)

	for _, dia := range dias {
		acc := porDia[dia]
		ventasDia := dto.VentasDiarias{
			Fecha:          dia,
			TotalVentas:    acc.total,
			NumeroFacturas: len(acc.facturas),
			Categorias:     make([]dto.VentasCategoria, 0, len(entity.CategoriasVehiculo)),
		}
		for _, cat := range entity.CategoriasVehiculo {
			catAcc := porDiaCategoria[dia][cat]
			ventasDia.Categorias = append(ventasDia.Categorias, dto.VentasCategoria{
				Categoria:      cat,
				TotalVentas:    catAcc.total,
				NumeroFacturas: len(catAcc.facturas),
			})
		}
		resumen.VentasDiarias = append(resumen.VentasDiarias, ventasDia)
	}

	return resumen
}
