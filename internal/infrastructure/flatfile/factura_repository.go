package flatfile

import (
	"sort"
	"time"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// columnasFacturas esquema del archivo de facturas: una fila por línea de
// servicio, con los campos de cabecera repetidos en todas las filas de la factura.
var columnasFacturas = []string{
	"FACTURA", "FECHA", "PLACA", "CATEGORIA", "GRUPO", "CLIENTE",
	"MEDIO_PAGO", "IVA", "VALOR_IVA", "DESCUENTO", "VLR_DESCUENTO",
	"BRUTO", "SUBTOTAL", "TOTAL", "SERVICIOS", "CANTIDAD", "DESCRIPCION", "VALOR",
}

// FacturaRepo implementación de FacturaRepository sobre facturas.csv.
type FacturaRepo struct {
	tabla *Tabla
}

// NewFacturaRepository construye el adaptador.
func NewFacturaRepository(ruta string) *FacturaRepo {
	return &FacturaRepo{tabla: NuevaTabla(ruta, columnasFacturas)}
}

// Create asigna el siguiente número consecutivo (máximo existente + 1, primera
// factura = entity.NumeroInicialFactura), agrega una fila por línea de servicio
// y reescribe el archivo ordenado por número de factura ascendente.
func (r *FacturaRepo) Create(factura *entity.Factura) (*entity.Factura, error) {
	err := r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		factura.Numero = siguienteNumero(registros)
		registros = append(registros, filasDeFactura(factura)...)
		ordenarPorNumero(registros)
		return registros, nil
	})
	if err != nil {
		return nil, err
	}
	return factura, nil
}

// GetByNumero reconstruye una factura agrupando sus filas. nil, nil si no existe.
func (r *FacturaRepo) GetByNumero(numero int) (*entity.Factura, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	for _, f := range agruparFacturas(registros) {
		if f.Numero == numero {
			return f, nil
		}
	}
	return nil, nil
}

// GetAll agrupa todas las filas por número de factura, en orden de primera aparición.
func (r *FacturaRepo) GetAll() ([]*entity.Factura, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	return agruparFacturas(registros), nil
}

// Update reemplaza todas las filas de la factura por las del objeto recibido,
// conservando el número original.
func (r *FacturaRepo) Update(numero int, factura *entity.Factura) (*entity.Factura, error) {
	err := r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		restantes, eliminadas := separarPorNumero(registros, numero)
		if eliminadas == 0 {
			return nil, domain.ErrNotFound
		}
		factura.Numero = numero
		restantes = append(restantes, filasDeFactura(factura)...)
		ordenarPorNumero(restantes)
		return restantes, nil
	})
	if err != nil {
		return nil, err
	}
	return factura, nil
}

// Delete elimina todas las filas de la factura.
func (r *FacturaRepo) Delete(numero int) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		restantes, eliminadas := separarPorNumero(registros, numero)
		if eliminadas == 0 {
			return nil, domain.ErrNotFound
		}
		return restantes, nil
	})
}

// ── Filas ↔ facturas ─────────────────────────────────────────────────────────

func siguienteNumero(registros []Registro) int {
	max := 0
	for _, reg := range registros {
		if n := ParseEntero(reg["FACTURA"]); n > max {
			max = n
		}
	}
	if max == 0 {
		return entity.NumeroInicialFactura
	}
	return max + 1
}

func ordenarPorNumero(registros []Registro) {
	sort.SliceStable(registros, func(i, j int) bool {
		return ParseEntero(registros[i]["FACTURA"]) < ParseEntero(registros[j]["FACTURA"])
	})
}

func separarPorNumero(registros []Registro, numero int) (restantes []Registro, eliminadas int) {
	for _, reg := range registros {
		if ParseEntero(reg["FACTURA"]) == numero {
			eliminadas++
			continue
		}
		restantes = append(restantes, reg)
	}
	return restantes, eliminadas
}

func filasDeFactura(f *entity.Factura) []Registro {
	base := Registro{
		"FACTURA":       FormatEntero(f.Numero),
		"FECHA":         f.Fecha.Format(time.RFC3339),
		"PLACA":         f.Placa,
		"CATEGORIA":     f.Categoria,
		"GRUPO":         FormatEntero(f.Grupo),
		"CLIENTE":       f.IDCliente,
		"MEDIO_PAGO":    f.MedioPago,
		"IVA":           f.IVA.String(),
		"VALOR_IVA":     f.VlrIVA.String(),
		"DESCUENTO":     f.Descuento.String(),
		"VLR_DESCUENTO": f.VlrDescuento.String(),
		"BRUTO":         f.Bruto.String(),
		"SUBTOTAL":      f.Subtotal.String(),
		"TOTAL":         f.Total.String(),
	}
	filas := make([]Registro, 0, len(f.Servicios))
	for _, s := range f.Servicios {
		fila := make(Registro, len(columnasFacturas))
		for k, v := range base {
			fila[k] = v
		}
		fila["SERVICIOS"] = FormatEntero(s.IDServicio)
		fila["CANTIDAD"] = s.Cantidad.String()
		fila["DESCRIPCION"] = s.Descripcion
		fila["VALOR"] = s.Valor.String()
		filas = append(filas, fila)
	}
	return filas
}

// agruparFacturas reconstruye las facturas agrupando filas por número, en el
// orden en que aparecen en el archivo. El orden de las filas de cada factura
// define el orden de sus líneas.
func agruparFacturas(registros []Registro) []*entity.Factura {
	var orden []int
	porNumero := make(map[int]*entity.Factura)
	for _, reg := range registros {
		numero := ParseEntero(reg["FACTURA"])
		f, visto := porNumero[numero]
		if !visto {
			f = &entity.Factura{
				Numero:       numero,
				Fecha:        parseFecha(reg["FECHA"]),
				Placa:        reg["PLACA"],
				Categoria:    reg["CATEGORIA"],
				Grupo:        ParseEntero(reg["GRUPO"]),
				IDCliente:    reg["CLIENTE"],
				MedioPago:    reg["MEDIO_PAGO"],
				IVA:          ParseDecimal(reg["IVA"]),
				VlrIVA:       ParseDecimal(reg["VALOR_IVA"]),
				Descuento:    ParseDecimal(reg["DESCUENTO"]),
				VlrDescuento: ParseDecimal(reg["VLR_DESCUENTO"]),
				Bruto:        ParseDecimal(reg["BRUTO"]),
				Subtotal:     ParseDecimal(reg["SUBTOTAL"]),
				Total:        ParseDecimal(reg["TOTAL"]),
			}
			porNumero[numero] = f
			orden = append(orden, numero)
		}
		f.Servicios = append(f.Servicios, entity.ServicioFactura{
			IDServicio:  ParseEntero(reg["SERVICIOS"]),
			Cantidad:    ParseDecimal(reg["CANTIDAD"]),
			Descripcion: reg["DESCRIPCION"],
			Valor:       ParseDecimal(reg["VALOR"]),
		})
	}
	facturas := make([]*entity.Factura, 0, len(orden))
	for _, numero := range orden {
		facturas = append(facturas, porNumero[numero])
	}
	return facturas
}

// parseFecha acepta RFC3339 o fecha simple; un valor ilegible queda en cero
// para no abortar la lectura del archivo completo.
func parseFecha(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
