package repository

import "github.com/spacar/lavadero-api/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para facturas.
// El almacenamiento es denormalizado (una fila por línea de servicio), pero el
// puerto trabaja siempre con la factura completa: create/update/delete operan
// sobre todas sus filas a la vez.
type FacturaRepository interface {
	// Create asigna el siguiente número consecutivo y persiste la factura.
	// Devuelve la factura con su número asignado.
	Create(factura *entity.Factura) (*entity.Factura, error)
	// GetByNumero devuelve nil, nil si la factura no existe.
	GetByNumero(numero int) (*entity.Factura, error)
	// GetAll devuelve las facturas en orden de primera aparición en el archivo.
	GetAll() ([]*entity.Factura, error)
	// Update reemplaza todas las líneas de la factura conservando su número.
	// Devuelve domain.ErrNotFound si el número no existe.
	Update(numero int, factura *entity.Factura) (*entity.Factura, error)
	// Delete elimina todas las filas de la factura. domain.ErrNotFound si no hay filas.
	Delete(numero int) error
}
