package dto

import "github.com/spacar/lavadero-api/internal/domain/entity"

// ActualizarConfigRequest actualización parcial de la configuración: las
// secciones en nil se conservan sin cambios.
type ActualizarConfigRequest struct {
	Empresa *entity.Empresa `json:"empresa,omitempty"`
	Tema    *entity.Tema    `json:"tema,omitempty"`
}
