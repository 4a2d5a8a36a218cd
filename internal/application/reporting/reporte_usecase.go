// Package reporting implementa los reportes de ventas: consultas filtradas de
// facturas y el resumen agregado por día, medio de pago y categoría de vehículo.
package reporting

import (
	"strings"
	"time"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

const formatoFechaFiltro = "2006-01-02"

// ReporteUseCase consultas de reporte sobre el archivo de facturas.
type ReporteUseCase struct {
	facturas repository.FacturaRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(facturas repository.FacturaRepository) *ReporteUseCase {
	return &ReporteUseCase{facturas: facturas}
}

// Filtro parámetros opcionales de los reportes de facturas.
type Filtro struct {
	FechaInicio string // YYYY-MM-DD; ambas fechas o ninguna
	FechaFin    string
	IDCliente   string // coincidencia exacta (con espacios recortados)
}

// GetAll devuelve las facturas que pasan el filtro de cliente y rango de fechas
// (inclusive en ambos extremos).
func (uc *ReporteUseCase) GetAll(filtro Filtro) ([]*entity.Factura, error) {
	rango, err := validarRango(filtro.FechaInicio, filtro.FechaFin)
	if err != nil {
		return nil, err
	}

	facturas, err := uc.facturas.GetAll()
	if err != nil {
		return nil, err
	}

	if cliente := strings.TrimSpace(filtro.IDCliente); cliente != "" {
		var filtradas []*entity.Factura
		for _, f := range facturas {
			if strings.TrimSpace(f.IDCliente) == cliente {
				filtradas = append(filtradas, f)
			}
		}
		facturas = filtradas
	}

	if rango != nil {
		var filtradas []*entity.Factura
		for _, f := range facturas {
			if rango.contiene(f.Fecha) {
				filtradas = append(filtradas, f)
			}
		}
		facturas = filtradas
	}

	return facturas, nil
}

// GetByMedioPago filtra por coincidencia parcial del medio de pago, sin
// distinguir mayúsculas.
func (uc *ReporteUseCase) GetByMedioPago(medioPago string) ([]*entity.Factura, error) {
	facturas, err := uc.facturas.GetAll()
	if err != nil {
		return nil, err
	}
	necesidad := strings.ToUpper(medioPago)
	var filtradas []*entity.Factura
	for _, f := range facturas {
		if strings.Contains(strings.ToUpper(f.MedioPago), necesidad) {
			filtradas = append(filtradas, f)
		}
	}
	return filtradas, nil
}

// GetByPlaca filtra por placa exacta, sin distinguir mayúsculas.
func (uc *ReporteUseCase) GetByPlaca(placa string) ([]*entity.Factura, error) {
	facturas, err := uc.facturas.GetAll()
	if err != nil {
		return nil, err
	}
	var filtradas []*entity.Factura
	for _, f := range facturas {
		if strings.EqualFold(f.Placa, placa) {
			filtradas = append(filtradas, f)
		}
	}
	return filtradas, nil
}

// GetResumen agrega las ventas del rango: totales generales, desglose por
// medio de pago canónico y ventas diarias con desglose por categoría.
func (uc *ReporteUseCase) GetResumen(fechaInicio, fechaFin string) (*dto.ResumenVentas, error) {
	facturas, err := uc.GetAll(Filtro{FechaInicio: fechaInicio, FechaFin: fechaFin})
	if err != nil {
		return nil, err
	}
	resumen := construirResumen(facturas)
	resumen.FechaInicio = fechaInicio
	resumen.FechaFin = fechaFin
	return resumen, nil
}

// ── Rango de fechas ──────────────────────────────────────────────────────────

type rangoFechas struct {
	inicio, fin string // YYYY-MM-DD; la comparación lexicográfica es válida en ISO
}

func (r rangoFechas) contiene(fecha time.Time) bool {
	dia := fecha.Format(formatoFechaFiltro)
	return dia >= r.inicio && dia <= r.fin
}

// validarRango exige ambas fechas o ninguna, formato YYYY-MM-DD y fin ≥ inicio.
func validarRango(inicio, fin string) (*rangoFechas, error) {
	if inicio == "" && fin == "" {
		return nil, nil
	}
	if inicio == "" || fin == "" {
		return nil, domain.ErrFormatoFecha
	}
	fechaInicio, err := time.Parse(formatoFechaFiltro, inicio)
	if err != nil {
		return nil, domain.ErrFormatoFecha
	}
	fechaFin, err := time.Parse(formatoFechaFiltro, fin)
	if err != nil {
		return nil, domain.ErrFormatoFecha
	}
	if fechaFin.Before(fechaInicio) {
		return nil, domain.ErrRangoFechas
	}
	return &rangoFechas{inicio: inicio, fin: fin}, nil
}
