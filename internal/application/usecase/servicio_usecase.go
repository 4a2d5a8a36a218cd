package usecase

import (
	"strings"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

// ServicioUseCase casos de uso para los catálogos de servicios generales y adicionales.
type ServicioUseCase struct {
	repo repository.ServicioRepository
}

// NewServicioUseCase construye el caso de uso.
func NewServicioUseCase(repo repository.ServicioRepository) *ServicioUseCase {
	return &ServicioUseCase{repo: repo}
}

// CrearGeneral registra un servicio general; ErrDuplicate si el nombre ya existe en el catálogo.
func (uc *ServicioUseCase) CrearGeneral(in dto.ServicioGeneralRequest) (*entity.ServicioGeneral, error) {
	nombre, err := uc.validarNombre(entity.TipoServicioGeneral, in.Nombre)
	if err != nil {
		return nil, err
	}
	if err := validarValores(in.Valores); err != nil {
		return nil, err
	}
	servicio := &entity.ServicioGeneral{
		Nombre:       nombre,
		TipoServicio: entity.TipoServicioGeneral,
		Valores:      in.Valores,
	}
	return uc.repo.CreateGeneral(servicio)
}

// CrearAdicional registra un servicio adicional; ErrDuplicate si el nombre ya existe.
func (uc *ServicioUseCase) CrearAdicional(in dto.ServicioAdicionalRequest) (*entity.ServicioAdicional, error) {
	nombre, err := uc.validarNombre(entity.TipoServicioAdicional, in.Nombre)
	if err != nil {
		return nil, err
	}
	if err := validarAdicional(in); err != nil {
		return nil, err
	}
	servicio := &entity.ServicioAdicional{
		Nombre:         nombre,
		TipoServicio:   entity.TipoServicioAdicional,
		Categorias:     capitalizarCategorias(in.Categorias),
		PrecioVariable: in.PrecioVariable,
		Variable:       in.Variable,
		PrecioBase:     in.PrecioBase,
	}
	return uc.repo.CreateAdicional(servicio)
}

// BuscarGeneral devuelve el servicio general por ID o domain.ErrNotFound.
func (uc *ServicioUseCase) BuscarGeneral(id int) (*entity.ServicioGeneral, error) {
	servicio, err := uc.repo.GetGeneralByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, domain.ErrNotFound
	}
	return servicio, nil
}

// BuscarAdicional devuelve el servicio adicional por ID o domain.ErrNotFound.
func (uc *ServicioUseCase) BuscarAdicional(id int) (*entity.ServicioAdicional, error) {
	servicio, err := uc.repo.GetAdicionalByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, domain.ErrNotFound
	}
	return servicio, nil
}

// Listar devuelve ambos catálogos completos.
func (uc *ServicioUseCase) Listar() (*dto.CatalogoServicios, error) {
	generales, err := uc.repo.GetAllGenerales()
	if err != nil {
		return nil, err
	}
	adicionales, err := uc.repo.GetAllAdicionales()
	if err != nil {
		return nil, err
	}
	return &dto.CatalogoServicios{Generales: generales, Adicionales: adicionales}, nil
}

// ActualizarGeneral reemplaza el servicio general identificado por id.
func (uc *ServicioUseCase) ActualizarGeneral(id int, in dto.ServicioGeneralRequest) (*entity.ServicioGeneral, error) {
	if id < entity.IDInicialServicioGeneral || id >= entity.IDInicialServicioAdicional {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validarValores(in.Valores); err != nil {
		return nil, err
	}
	servicio := &entity.ServicioGeneral{
		IDServicio:   id,
		Nombre:       capitalizarCategoria(in.Nombre),
		TipoServicio: entity.TipoServicioGeneral,
		Valores:      in.Valores,
	}
	if err := uc.repo.UpdateGeneral(servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

// ActualizarAdicional reemplaza el servicio adicional identificado por id.
func (uc *ServicioUseCase) ActualizarAdicional(id int, in dto.ServicioAdicionalRequest) (*entity.ServicioAdicional, error) {
	if id < entity.IDInicialServicioAdicional {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validarAdicional(in); err != nil {
		return nil, err
	}
	servicio := &entity.ServicioAdicional{
		IDServicio:     id,
		Nombre:         capitalizarCategoria(in.Nombre),
		TipoServicio:   entity.TipoServicioAdicional,
		Categorias:     capitalizarCategorias(in.Categorias),
		PrecioVariable: in.PrecioVariable,
		Variable:       in.Variable,
		PrecioBase:     in.PrecioBase,
	}
	if err := uc.repo.UpdateAdicional(servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

// EliminarGeneral borra un servicio general por ID.
func (uc *ServicioUseCase) EliminarGeneral(id int) error {
	return uc.repo.DeleteGeneral(id)
}

// EliminarAdicional borra un servicio adicional por ID.
func (uc *ServicioUseCase) EliminarAdicional(id int) error {
	return uc.repo.DeleteAdicional(id)
}

func (uc *ServicioUseCase) validarNombre(tipoServicio, nombre string) (string, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return "", domain.ErrInvalidInput
	}
	nombre = capitalizarCategoria(nombre)
	existe, err := uc.repo.ExisteNombre(tipoServicio, nombre)
	if err != nil {
		return "", err
	}
	if existe {
		return "", domain.ErrDuplicate
	}
	return nombre, nil
}

func validarValores(valores []entity.CategoriaValor) error {
	if len(valores) == 0 {
		return domain.ErrInvalidInput
	}
	for _, cv := range valores {
		if !entity.CategoriaValida(cv.Categoria) {
			return domain.ErrInvalidInput
		}
		if len(cv.Grupos) == 0 {
			return domain.ErrInvalidInput
		}
		for _, gv := range cv.Grupos {
			if gv.ID <= 0 || gv.Precio.IsNegative() {
				return domain.ErrInvalidInput
			}
		}
	}
	return nil
}

func validarAdicional(in dto.ServicioAdicionalRequest) error {
	if len(in.Categorias) == 0 {
		return domain.ErrInvalidInput
	}
	for _, c := range in.Categorias {
		if !entity.CategoriaValida(capitalizarCategoria(c)) {
			return domain.ErrInvalidInput
		}
	}
	if in.PrecioBase.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.PrecioVariable && !entity.UnidadVariableValida(in.Variable) {
		return domain.ErrInvalidInput
	}
	return nil
}

func capitalizarCategorias(categorias []string) []string {
	out := make([]string, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, capitalizarCategoria(c))
	}
	return out
}
