package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

const formatoFechaNacimiento = "2006-01-02"

var emailValido = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ClienteUseCase casos de uso para clientes del lavadero.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Crear registra un cliente nuevo; ErrDuplicate si el documento ya existe.
func (uc *ClienteUseCase) Crear(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := validarCliente(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return clienteAResponse(cliente), nil
}

// Buscar devuelve el cliente por documento o domain.ErrNotFound.
func (uc *ClienteUseCase) Buscar(documento string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByDocumento(documento)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return clienteAResponse(cliente), nil
}

// Listar devuelve todos los clientes.
func (uc *ClienteUseCase) Listar() ([]*dto.ClienteResponse, error) {
	clientes, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, clienteAResponse(c))
	}
	return out, nil
}

// Actualizar reemplaza los datos del cliente identificado por su documento.
func (uc *ClienteUseCase) Actualizar(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := validarCliente(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return clienteAResponse(cliente), nil
}

// Eliminar borra el cliente por documento.
func (uc *ClienteUseCase) Eliminar(documento string) error {
	return uc.repo.Delete(documento)
}

func validarCliente(in dto.ClienteRequest) (*entity.Cliente, error) {
	if !entity.TipoDocumentoValido(in.TipoDoc) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Documento) < 3 || in.Nombre == "" || in.Apellido == "" || len(in.Telefono) < 7 {
		return nil, domain.ErrInvalidInput
	}
	if !emailValido.MatchString(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	fecNacimiento, err := time.Parse(formatoFechaNacimiento, in.FecNacimiento)
	if err != nil {
		return nil, domain.ErrFormatoFecha
	}
	if fecNacimiento.After(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Cliente{
		TipoDoc:       in.TipoDoc,
		Documento:     strings.TrimSpace(in.Documento),
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		FecNacimiento: fecNacimiento,
		Telefono:      in.Telefono,
		Email:         in.Email,
	}
	cliente.Normalizar()
	return cliente, nil
}

func clienteAResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		TipoDoc:       c.TipoDoc,
		Documento:     c.Documento,
		Nombre:        c.Nombre,
		Apellido:      c.Apellido,
		FecNacimiento: c.FecNacimiento.Format(formatoFechaNacimiento),
		Telefono:      c.Telefono,
		Email:         c.Email,
	}
}
