package flatfile

import (
	"time"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

var columnasClientes = []string{
	"TIPO_DOCUMENTO", "DOCUMENTO", "NOMBRE", "APELLIDO",
	"FECHA_NACI", "TELEFONO", "EMAIL",
}

const formatoFechaNaci = "2006-01-02"

// ClienteRepo implementación de ClienteRepository sobre clientes.csv.
type ClienteRepo struct {
	tabla *Tabla
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(ruta string) *ClienteRepo {
	return &ClienteRepo{tabla: NuevaTabla(ruta, columnasClientes)}
}

// Create agrega el cliente; falla con ErrDuplicate si el documento ya existe.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for _, reg := range registros {
			if reg["DOCUMENTO"] == cliente.Documento {
				return nil, domain.ErrDuplicate
			}
		}
		return append(registros, filaDeCliente(cliente)), nil
	})
}

// GetByDocumento devuelve nil, nil si el cliente no existe.
func (r *ClienteRepo) GetByDocumento(documento string) (*entity.Cliente, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	for _, reg := range registros {
		if reg["DOCUMENTO"] == documento {
			return clienteDeFila(reg), nil
		}
	}
	return nil, nil
}

// GetAll devuelve todos los clientes en el orden del archivo.
func (r *ClienteRepo) GetAll() ([]*entity.Cliente, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	clientes := make([]*entity.Cliente, 0, len(registros))
	for _, reg := range registros {
		clientes = append(clientes, clienteDeFila(reg))
	}
	return clientes, nil
}

// Update reemplaza la fila del cliente; ErrNotFound si el documento no existe.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if reg["DOCUMENTO"] == cliente.Documento {
				registros[i] = filaDeCliente(cliente)
				return registros, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la fila del cliente; ErrNotFound si el documento no existe.
func (r *ClienteRepo) Delete(documento string) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if reg["DOCUMENTO"] == documento {
				return append(registros[:i], registros[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func filaDeCliente(c *entity.Cliente) Registro {
	return Registro{
		"TIPO_DOCUMENTO": c.TipoDoc,
		"DOCUMENTO":      c.Documento,
		"NOMBRE":         c.Nombre,
		"APELLIDO":       c.Apellido,
		"FECHA_NACI":     c.FecNacimiento.Format(formatoFechaNaci),
		"TELEFONO":       c.Telefono,
		"EMAIL":          c.Email,
	}
}

func clienteDeFila(reg Registro) *entity.Cliente {
	fecNaci, _ := time.Parse(formatoFechaNaci, reg["FECHA_NACI"])
	return &entity.Cliente{
		TipoDoc:       reg["TIPO_DOCUMENTO"],
		Documento:     reg["DOCUMENTO"],
		Nombre:        reg["NOMBRE"],
		Apellido:      reg["APELLIDO"],
		FecNacimiento: fecNaci,
		Telefono:      reg["TELEFONO"],
		Email:         reg["EMAIL"],
	}
}
