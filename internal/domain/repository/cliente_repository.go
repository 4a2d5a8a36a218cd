package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente (clave: documento).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	// GetByDocumento devuelve nil, nil si el cliente no existe.
	GetByDocumento(documento string) (*entity.Cliente, error)
	GetAll() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(documento string) error
}
