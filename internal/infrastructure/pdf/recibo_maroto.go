// Package pdf implementa el recibo de venta imprimible del lavadero.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre empresa + NIT │ N° + Fecha    │
//	│  ───────────────────────────────────────────  │
//	│  VEHÍCULO: Placa / Categoría / Cliente        │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Valor            │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL  │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 16, Green: 98, Blue: 46}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generador ─────────────────────────────────────────────────────────────────

// GeneradorMaroto implementa billing.GeneradorRecibo usando Maroto v2.
type GeneradorMaroto struct{}

// NewGeneradorMaroto construye el generador.
func NewGeneradorMaroto() *GeneradorMaroto { return &GeneradorMaroto{} }

// GenerarRecibo genera el recibo en PDF y devuelve sus bytes.
func (g *GeneradorMaroto) GenerarRecibo(factura *entity.Factura, empresa *entity.Empresa) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo %d", factura.Numero), true).
		WithAuthor(empresa.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(filaEncabezado(factura, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaVehiculo(factura))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(filaCabeceraTabla())
	for _, r := range filasServicios(factura.Servicios) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(filaTotales(factura, empresa))
	m.AddRows(filaPie(empresa))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// filaEncabezado: nombre de la empresa + NIT (izq) y N° recibo + fecha (der).
func filaEncabezado(factura *entity.Factura, empresa *entity.Empresa) core.Row {
	fecha := factura.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("NIT: "+empresa.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", factura.Numero), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGris,
			}),
		),
	)
}

// filaVehiculo: placa, categoría y documento del cliente.
func filaVehiculo(factura *entity.Factura) core.Row {
	cliente := factura.IDCliente
	if cliente == "" {
		cliente = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("Placa: %s   |   Categoría: %s   |   Cliente: %s   |   Medio de pago: %s",
				factura.Placa, factura.Categoria, cliente, factura.MedioPago,
			), props.Text{Size: 8, Top: 7, Color: colorGris}),
		),
	)
}

// filaCabeceraTabla: cabecera de la tabla de servicios.
func filaCabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Servicio", 7, align.Left),
		h("Valor", 3, align.Right),
	)
}

// filasServicios: una fila por línea de la factura.
func filasServicios(servicios []entity.ServicioFactura) []core.Row {
	result := make([]core.Row, 0, len(servicios))
	for _, s := range servicios {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.Cantidad.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(7).Add(text.New(
				s.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatoMiles(s.Valor.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// filaTotales: bloque de totales alineado a la derecha.
func filaTotales(factura *entity.Factura, empresa *entity.Empresa) core.Row {
	etiqueta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	granEtiqueta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 2,
		})
	}
	granValor := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 1,
		})
	}

	etiquetas := []core.Component{
		etiqueta("Subtotal:"),
		etiqueta(fmt.Sprintf("Descuento (%s%%):", factura.Descuento.StringFixed(0))),
	}
	valores := []core.Component{
		valor("$" + formatoMiles(factura.Subtotal.StringFixed(0))),
		valor("-$" + formatoMiles(factura.VlrDescuento.StringFixed(0))),
	}
	if empresa.IVA {
		detalle := fmt.Sprintf("IVA (%s%%):", factura.IVA.StringFixed(0))
		if empresa.IVAIncluido {
			detalle = fmt.Sprintf("IVA incluido (%s%%):", factura.IVA.StringFixed(0))
		}
		etiquetas = append(etiquetas, etiqueta(detalle))
		valores = append(valores, valor("$"+formatoMiles(factura.VlrIVA.StringFixed(0))))
	}
	etiquetas = append(etiquetas, granEtiqueta("TOTAL:"))
	valores = append(valores, granValor("$"+formatoMiles(factura.Total.StringFixed(0))))

	return row.New(30).Add(
		col.New(4), // espacio izquierdo
		col.New(5).Add(etiquetas...),
		col.New(3).Add(valores...),
	)
}

// filaPie: datos de contacto de la empresa.
func filaPie(empresa *entity.Empresa) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s   |   Tel: %s   |   ¡Gracias por su visita!",
			empresa.Direccion, empresa.Telefono,
		), props.Text{Size: 7, Align: align.Center, Color: colorGris, Top: 4}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatoMiles inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatoMiles(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
