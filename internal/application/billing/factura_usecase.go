package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

// FacturaUseCase casos de uso de facturación: crear, consultar, reemplazar y eliminar.
// Los totales nunca se reciben del cliente; siempre se derivan de las líneas,
// el descuento y la configuración de IVA de la empresa.
type FacturaUseCase struct {
	facturas repository.FacturaRepository
	config   repository.ConfigRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(facturas repository.FacturaRepository, config repository.ConfigRepository) *FacturaUseCase {
	return &FacturaUseCase{facturas: facturas, config: config}
}

// Crear valida, calcula totales y persiste la factura con el siguiente número consecutivo.
func (uc *FacturaUseCase) Crear(in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	factura, err := uc.armarFactura(in)
	if err != nil {
		return nil, err
	}
	creada, err := uc.facturas.Create(factura)
	if err != nil {
		return nil, err
	}
	return ToFacturaResponse(creada), nil
}

// GetByNumero devuelve la factura o domain.ErrNotFound.
func (uc *FacturaUseCase) GetByNumero(numero int) (*dto.FacturaResponse, error) {
	factura, err := uc.facturas.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	return ToFacturaResponse(factura), nil
}

// GetAll devuelve todas las facturas en orden de aparición en el archivo.
func (uc *FacturaUseCase) GetAll() ([]*dto.FacturaResponse, error) {
	facturas, err := uc.facturas.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, ToFacturaResponse(f))
	}
	return out, nil
}

// Actualizar reemplaza la factura completa (todas sus líneas) conservando el número.
func (uc *FacturaUseCase) Actualizar(numero int, in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if numero <= 0 {
		return nil, domain.ErrInvalidInput
	}
	factura, err := uc.armarFactura(in)
	if err != nil {
		return nil, err
	}
	actualizada, err := uc.facturas.Update(numero, factura)
	if err != nil {
		return nil, err
	}
	return ToFacturaResponse(actualizada), nil
}

// Eliminar borra la factura completa.
func (uc *FacturaUseCase) Eliminar(numero int) error {
	return uc.facturas.Delete(numero)
}

// armarFactura valida la petición y construye la entidad con totales derivados.
// Toda la validación ocurre antes de cualquier mutación del archivo.
func (uc *FacturaUseCase) armarFactura(in dto.CrearFacturaRequest) (*entity.Factura, error) {
	if len(in.Servicios) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Placa)) < 5 {
		return nil, domain.ErrInvalidInput
	}
	servicios := make([]entity.ServicioFactura, 0, len(in.Servicios))
	for _, s := range in.Servicios {
		if !s.Valor.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		// Cantidad ausente vale 1; una cantidad explícita debe ser positiva.
		cantidad := decimal.NewFromInt(1)
		if s.Cantidad != nil {
			if !s.Cantidad.IsPositive() {
				return nil, domain.ErrInvalidInput
			}
			cantidad = *s.Cantidad
		}
		servicios = append(servicios, entity.ServicioFactura{
			IDServicio:  s.Servicio,
			Cantidad:    cantidad,
			Descripcion: s.Descripcion,
			Valor:       s.Valor,
		})
	}

	fecha, err := parseFechaFactura(in.Fecha)
	if err != nil {
		return nil, err
	}

	subtotal := CalcularSubtotal(servicios)
	valores, err := AplicarDescuento(subtotal, in.Descuento)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	iva, vlrIVA, total := AplicarIVA(valores.Total, &cfg.Empresa)

	if !total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	factura := &entity.Factura{
		Fecha:        fecha,
		Placa:        in.Placa,
		Categoria:    in.Categoria,
		Grupo:        in.Grupo,
		IDCliente:    in.IDCliente,
		MedioPago:    in.MedioPago,
		IVA:          iva,
		VlrIVA:       vlrIVA,
		Descuento:    in.Descuento,
		VlrDescuento: valores.VlrDescuento,
		Bruto:        subtotal,
		Subtotal:     subtotal,
		Total:        total,
		Servicios:    servicios,
	}
	factura.Normalizar()
	return factura, nil
}

func parseFechaFactura(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrFormatoFecha
}

// ToFacturaResponse convierte la entidad al DTO que consume el frontend.
func ToFacturaResponse(f *entity.Factura) *dto.FacturaResponse {
	servicios := make([]dto.ServicioFacturaResponse, 0, len(f.Servicios))
	for _, s := range f.Servicios {
		cantidad := s.Cantidad
		if cantidad.IsZero() {
			cantidad = decimal.NewFromInt(1)
		}
		servicios = append(servicios, dto.ServicioFacturaResponse{
			Servicio:    s.IDServicio,
			Cantidad:    cantidad,
			Descripcion: s.Descripcion,
			Valor:       s.Valor,
		})
	}
	return &dto.FacturaResponse{
		Factura:      f.Numero,
		Fecha:        f.Fecha.Format(time.RFC3339),
		Placa:        f.Placa,
		Categoria:    f.Categoria,
		Grupo:        f.Grupo,
		Cliente:      f.IDCliente,
		MedioPago:    f.MedioPago,
		IVA:          f.IVA,
		VlrIVA:       f.VlrIVA,
		Descuento:    f.Descuento,
		VlrDescuento: f.VlrDescuento,
		Bruto:        f.Bruto,
		Subtotal:     f.Subtotal,
		Total:        f.Total,
		Servicios:    servicios,
	}
}
