package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// VehiculoRepository define el puerto de persistencia para Vehiculo (clave: placa).
type VehiculoRepository interface {
	Create(vehiculo *entity.Vehiculo) error
	// GetByPlaca devuelve nil, nil si el vehículo no existe.
	GetByPlaca(placa string) (*entity.Vehiculo, error)
	// GetByCliente devuelve los vehículos registrados a nombre del documento dado.
	GetByCliente(documentoCliente string) ([]*entity.Vehiculo, error)
	GetAll() ([]*entity.Vehiculo, error)
	Update(vehiculo *entity.Vehiculo) error
	Delete(placa string) error
}
