package usecase

import (
	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

// ConfigUseCase casos de uso para la configuración de empresa y tema.
type ConfigUseCase struct {
	repo repository.ConfigRepository
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo}
}

// Get devuelve la configuración vigente, creándola con valores por defecto si no existe.
func (uc *ConfigUseCase) Get() (*entity.Configuracion, error) {
	return uc.repo.Get()
}

// Actualizar aplica una actualización parcial: solo las secciones presentes
// en la petición reemplazan a las guardadas.
func (uc *ConfigUseCase) Actualizar(in dto.ActualizarConfigRequest) (*entity.Configuracion, error) {
	if in.Empresa == nil && in.Tema == nil {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.Empresa != nil {
		if in.Empresa.ValorIVA.IsNegative() || in.Empresa.ValorIVA.GreaterThan(cientoPorCiento) {
			return nil, domain.ErrInvalidInput
		}
		cfg.Empresa = *in.Empresa
	}
	if in.Tema != nil {
		cfg.Tema = *in.Tema
	}
	if err := uc.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Restablecer descarta la configuración guardada y vuelve a los valores por defecto.
func (uc *ConfigUseCase) Restablecer() (*entity.Configuracion, error) {
	cfg := entity.ConfiguracionDefault()
	if err := uc.repo.Save(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
