package billing

import (
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

// GeneradorRecibo puerto de generación del recibo PDF de una factura.
type GeneradorRecibo interface {
	GenerarRecibo(factura *entity.Factura, empresa *entity.Empresa) ([]byte, error)
}

// ReciboUseCase genera la representación PDF de una factura existente.
type ReciboUseCase struct {
	facturas  repository.FacturaRepository
	config    repository.ConfigRepository
	generador GeneradorRecibo
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(facturas repository.FacturaRepository, config repository.ConfigRepository, generador GeneradorRecibo) *ReciboUseCase {
	return &ReciboUseCase{facturas: facturas, config: config, generador: generador}
}

// Generar produce el PDF de la factura indicada o domain.ErrNotFound.
func (uc *ReciboUseCase) Generar(numero int) ([]byte, error) {
	factura, err := uc.facturas.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	return uc.generador.GenerarRecibo(factura, &cfg.Empresa)
}
