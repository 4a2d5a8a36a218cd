package usecase

import (
	"strings"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

// VehiculoUseCase casos de uso para vehículos. Verifica que el cliente
// referenciado exista antes de crear o actualizar.
type VehiculoUseCase struct {
	vehiculos repository.VehiculoRepository
	clientes  repository.ClienteRepository
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(vehiculos repository.VehiculoRepository, clientes repository.ClienteRepository) *VehiculoUseCase {
	return &VehiculoUseCase{vehiculos: vehiculos, clientes: clientes}
}

// Crear registra un vehículo nuevo; ErrClienteNoRegistrado si el documento no existe.
func (uc *VehiculoUseCase) Crear(in dto.VehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := uc.validarVehiculo(in)
	if err != nil {
		return nil, err
	}
	if err := uc.vehiculos.Create(vehiculo); err != nil {
		return nil, err
	}
	return vehiculoAResponse(vehiculo), nil
}

// Buscar devuelve el vehículo por placa o domain.ErrNotFound.
func (uc *VehiculoUseCase) Buscar(placa string) (*dto.VehiculoResponse, error) {
	vehiculo, err := uc.vehiculos.GetByPlaca(placa)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	return vehiculoAResponse(vehiculo), nil
}

// Listar devuelve todos los vehículos; con documento no vacío filtra por cliente.
func (uc *VehiculoUseCase) Listar(documentoCliente string) ([]*dto.VehiculoResponse, error) {
	var (
		vehiculos []*entity.Vehiculo
		err       error
	)
	if documentoCliente != "" {
		vehiculos, err = uc.vehiculos.GetByCliente(documentoCliente)
	} else {
		vehiculos, err = uc.vehiculos.GetAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		out = append(out, vehiculoAResponse(v))
	}
	return out, nil
}

// Actualizar reemplaza los datos del vehículo identificado por su placa.
func (uc *VehiculoUseCase) Actualizar(in dto.VehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := uc.validarVehiculo(in)
	if err != nil {
		return nil, err
	}
	if err := uc.vehiculos.Update(vehiculo); err != nil {
		return nil, err
	}
	return vehiculoAResponse(vehiculo), nil
}

// Eliminar borra el vehículo por placa.
func (uc *VehiculoUseCase) Eliminar(placa string) error {
	return uc.vehiculos.Delete(placa)
}

func (uc *VehiculoUseCase) validarVehiculo(in dto.VehiculoRequest) (*entity.Vehiculo, error) {
	placa := strings.TrimSpace(in.Placa)
	if len(placa) < 3 || in.Marca == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := capitalizarCategoria(in.Categoria)
	if !entity.CategoriaValida(categoria) {
		return nil, domain.ErrInvalidInput
	}
	if in.Grupo <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clientes.GetByDocumento(in.DocumentoCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoRegistrado
	}
	vehiculo := &entity.Vehiculo{
		Placa:            placa,
		DocumentoCliente: in.DocumentoCliente,
		Categoria:        categoria,
		Segmento:         in.Segmento,
		Marca:            in.Marca,
		Linea:            in.Linea,
		Modelo:           in.Modelo,
		Cilindrada:       in.Cilindrada,
		Grupo:            in.Grupo,
	}
	vehiculo.Normalizar()
	return vehiculo, nil
}

func capitalizarCategoria(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return c
	}
	return strings.ToUpper(c[:1]) + strings.ToLower(c[1:])
}

func vehiculoAResponse(v *entity.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		Placa:            v.Placa,
		DocumentoCliente: v.DocumentoCliente,
		Categoria:        v.Categoria,
		Segmento:         v.Segmento,
		Marca:            v.Marca,
		Linea:            v.Linea,
		Modelo:           v.Modelo,
		Cilindrada:       v.Cilindrada,
		Grupo:            v.Grupo,
	}
}
