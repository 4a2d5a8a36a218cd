package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// PromocionRepository define el puerto de persistencia para Promocion.
type PromocionRepository interface {
	// Create asigna el siguiente ID consecutivo si IDPromocion es cero.
	Create(promocion *entity.Promocion) (*entity.Promocion, error)
	// GetByID devuelve nil, nil si la promoción no existe.
	GetByID(id int) (*entity.Promocion, error)
	GetAll() ([]*entity.Promocion, error)
	Update(promocion *entity.Promocion) error
	Delete(id int) error
}
