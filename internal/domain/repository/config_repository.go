package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// ConfigRepository define el puerto de persistencia para la configuración de empresa.
type ConfigRepository interface {
	// Get carga la configuración; si el archivo no existe la crea con valores por defecto.
	Get() (*entity.Configuracion, error)
	Save(cfg *entity.Configuracion) error
}
