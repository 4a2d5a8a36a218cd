package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

const formatoFechaPromocion = "2006-01-02"

var cientoPorCiento = decimal.NewFromInt(100)

// PromocionUseCase casos de uso para promociones de descuento.
type PromocionUseCase struct {
	repo repository.PromocionRepository
}

// NewPromocionUseCase construye el caso de uso.
func NewPromocionUseCase(repo repository.PromocionRepository) *PromocionUseCase {
	return &PromocionUseCase{repo: repo}
}

// Crear registra una promoción; el ID se asigna de forma consecutiva.
func (uc *PromocionUseCase) Crear(in dto.PromocionRequest) (*dto.PromocionResponse, error) {
	promocion, err := validarPromocion(in)
	if err != nil {
		return nil, err
	}
	creada, err := uc.repo.Create(promocion)
	if err != nil {
		return nil, err
	}
	return promocionAResponse(creada), nil
}

// Buscar devuelve la promoción por ID o domain.ErrNotFound.
func (uc *PromocionUseCase) Buscar(id int) (*dto.PromocionResponse, error) {
	promocion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promocion == nil {
		return nil, domain.ErrNotFound
	}
	return promocionAResponse(promocion), nil
}

// Listar devuelve todas las promociones.
func (uc *PromocionUseCase) Listar() ([]*dto.PromocionResponse, error) {
	promociones, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PromocionResponse, 0, len(promociones))
	for _, p := range promociones {
		out = append(out, promocionAResponse(p))
	}
	return out, nil
}

// Vigentes devuelve las promociones activas en la fecha dada.
func (uc *PromocionUseCase) Vigentes(fecha time.Time) ([]*dto.PromocionResponse, error) {
	promociones, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PromocionResponse, 0, len(promociones))
	for _, p := range promociones {
		if p.Vigente(fecha) {
			out = append(out, promocionAResponse(p))
		}
	}
	return out, nil
}

// Actualizar reemplaza la promoción identificada por id.
func (uc *PromocionUseCase) Actualizar(id int, in dto.PromocionRequest) (*dto.PromocionResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	promocion, err := validarPromocion(in)
	if err != nil {
		return nil, err
	}
	promocion.IDPromocion = id
	if err := uc.repo.Update(promocion); err != nil {
		return nil, err
	}
	return promocionAResponse(promocion), nil
}

// Eliminar borra la promoción por ID.
func (uc *PromocionUseCase) Eliminar(id int) error {
	return uc.repo.Delete(id)
}

func validarPromocion(in dto.PromocionRequest) (*entity.Promocion, error) {
	if strings.TrimSpace(in.Descripcion) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Porcentaje.IsNegative() || in.Porcentaje.GreaterThan(cientoPorCiento) {
		return nil, domain.ErrInvalidInput
	}
	inicio, err := parseFechaPromocion(in.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseFechaPromocion(in.FechaFin)
	if err != nil {
		return nil, err
	}
	if inicio != nil && fin != nil && fin.Before(*inicio) {
		return nil, domain.ErrRangoFechas
	}
	return &entity.Promocion{
		IDPromocion: in.IDPromocion,
		Descripcion: strings.TrimSpace(in.Descripcion),
		FechaInicio: inicio,
		FechaFin:    fin,
		Porcentaje:  in.Porcentaje,
		Estado:      in.Estado,
	}, nil
}

func parseFechaPromocion(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	fecha, err := time.Parse(formatoFechaPromocion, s)
	if err != nil {
		return nil, domain.ErrFormatoFecha
	}
	return &fecha, nil
}

func promocionAResponse(p *entity.Promocion) *dto.PromocionResponse {
	out := &dto.PromocionResponse{
		IDPromocion: p.IDPromocion,
		Descripcion: p.Descripcion,
		Porcentaje:  p.Porcentaje,
		Estado:      p.Estado,
	}
	if p.FechaInicio != nil {
		out.FechaInicio = p.FechaInicio.Format(formatoFechaPromocion)
	}
	if p.FechaFin != nil {
		out.FechaFin = p.FechaFin.Format(formatoFechaPromocion)
	}
	return out
}
