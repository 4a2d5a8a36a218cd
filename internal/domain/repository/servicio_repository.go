package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// ServicioRepository define el puerto de persistencia para los dos catálogos de servicios.
// Cada catálogo vive en su propio archivo y maneja su propio consecutivo de IDs.
type ServicioRepository interface {
	CreateGeneral(servicio *entity.ServicioGeneral) (*entity.ServicioGeneral, error)
	CreateAdicional(servicio *entity.ServicioAdicional) (*entity.ServicioAdicional, error)
	// GetGeneralByID devuelve nil, nil si no existe.
	GetGeneralByID(id int) (*entity.ServicioGeneral, error)
	GetAdicionalByID(id int) (*entity.ServicioAdicional, error)
	GetAllGenerales() ([]*entity.ServicioGeneral, error)
	GetAllAdicionales() ([]*entity.ServicioAdicional, error)
	// ExisteNombre busca por nombre exacto (capitalizado) en el catálogo indicado.
	ExisteNombre(tipoServicio, nombre string) (bool, error)
	UpdateGeneral(servicio *entity.ServicioGeneral) error
	UpdateAdicional(servicio *entity.ServicioAdicional) error
	DeleteGeneral(id int) error
	DeleteAdicional(id int) error
}
