package flatfile

import (
	"strings"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

var columnasVehiculos = []string{
	"PLACA", "DOCUMENTO_CLIENTE", "CATEGORIA", "SEGMENTO", "MARCA",
	"LINEA", "MODELO", "CILINDRADA", "GRUPO",
}

// VehiculoRepo implementación de VehiculoRepository sobre vehiculos.csv.
type VehiculoRepo struct {
	tabla *Tabla
}

// NewVehiculoRepository construye el adaptador.
func NewVehiculoRepository(ruta string) *VehiculoRepo {
	return &VehiculoRepo{tabla: NuevaTabla(ruta, columnasVehiculos)}
}

// Create agrega el vehículo; falla con ErrDuplicate si la placa ya existe.
func (r *VehiculoRepo) Create(vehiculo *entity.Vehiculo) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for _, reg := range registros {
			if strings.EqualFold(reg["PLACA"], vehiculo.Placa) {
				return nil, domain.ErrDuplicate
			}
		}
		return append(registros, filaDeVehiculo(vehiculo)), nil
	})
}

// GetByPlaca devuelve nil, nil si el vehículo no existe. La placa no distingue mayúsculas.
func (r *VehiculoRepo) GetByPlaca(placa string) (*entity.Vehiculo, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	for _, reg := range registros {
		if strings.EqualFold(reg["PLACA"], placa) {
			return vehiculoDeFila(reg), nil
		}
	}
	return nil, nil
}

// GetByCliente devuelve los vehículos registrados al documento dado.
func (r *VehiculoRepo) GetByCliente(documentoCliente string) ([]*entity.Vehiculo, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	documentoCliente = strings.TrimSpace(documentoCliente)
	var vehiculos []*entity.Vehiculo
	for _, reg := range registros {
		if reg["DOCUMENTO_CLIENTE"] == documentoCliente {
			vehiculos = append(vehiculos, vehiculoDeFila(reg))
		}
	}
	return vehiculos, nil
}

// GetAll devuelve todos los vehículos en el orden del archivo.
func (r *VehiculoRepo) GetAll() ([]*entity.Vehiculo, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	vehiculos := make([]*entity.Vehiculo, 0, len(registros))
	for _, reg := range registros {
		vehiculos = append(vehiculos, vehiculoDeFila(reg))
	}
	return vehiculos, nil
}

// Update reemplaza la fila del vehículo; ErrNotFound si la placa no existe.
func (r *VehiculoRepo) Update(vehiculo *entity.Vehiculo) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if strings.EqualFold(reg["PLACA"], vehiculo.Placa) {
				registros[i] = filaDeVehiculo(vehiculo)
				return registros, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la fila del vehículo; ErrNotFound si la placa no existe.
func (r *VehiculoRepo) Delete(placa string) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if strings.EqualFold(reg["PLACA"], placa) {
				return append(registros[:i], registros[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func filaDeVehiculo(v *entity.Vehiculo) Registro {
	return Registro{
		"PLACA":             v.Placa,
		"DOCUMENTO_CLIENTE": v.DocumentoCliente,
		"CATEGORIA":         v.Categoria,
		"SEGMENTO":          v.Segmento,
		"MARCA":             v.Marca,
		"LINEA":             v.Linea,
		"MODELO":            FormatEntero(v.Modelo),
		"CILINDRADA":        FormatEntero(v.Cilindrada),
		"GRUPO":             FormatEntero(v.Grupo),
	}
}

func vehiculoDeFila(reg Registro) *entity.Vehiculo {
	return &entity.Vehiculo{
		Placa:            reg["PLACA"],
		DocumentoCliente: reg["DOCUMENTO_CLIENTE"],
		Categoria:        reg["CATEGORIA"],
		Segmento:         reg["SEGMENTO"],
		Marca:            reg["MARCA"],
		Linea:            reg["LINEA"],
		Modelo:           ParseEntero(reg["MODELO"]),
		Cilindrada:       ParseEntero(reg["CILINDRADA"]),
		Grupo:            ParseEntero(reg["GRUPO"]),
	}
}
