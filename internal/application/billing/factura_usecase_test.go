package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type facturaRepoFake struct {
	facturas map[int]*entity.Factura
	ultimo   int
}

func nuevoFacturaRepoFake() *facturaRepoFake {
	return &facturaRepoFake{facturas: make(map[int]*entity.Factura)}
}

func (r *facturaRepoFake) Create(f *entity.Factura) (*entity.Factura, error) {
	if r.ultimo == 0 {
		r.ultimo = entity.NumeroInicialFactura
	} else {
		r.ultimo++
	}
	f.Numero = r.ultimo
	r.facturas[f.Numero] = f
	return f, nil
}

func (r *facturaRepoFake) GetByNumero(numero int) (*entity.Factura, error) {
	return r.facturas[numero], nil
}

func (r *facturaRepoFake) GetAll() ([]*entity.Factura, error) {
	out := make([]*entity.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, f)
	}
	return out, nil
}

func (r *facturaRepoFake) Update(numero int, f *entity.Factura) (*entity.Factura, error) {
	if _, ok := r.facturas[numero]; !ok {
		return nil, domain.ErrNotFound
	}
	f.Numero = numero
	r.facturas[numero] = f
	return f, nil
}

func (r *facturaRepoFake) Delete(numero int) error {
	if _, ok := r.facturas[numero]; !ok {
		return domain.ErrNotFound
	}
	delete(r.facturas, numero)
	return nil
}

type configRepoFake struct {
	cfg entity.Configuracion
}

func (r *configRepoFake) Get() (*entity.Configuracion, error) {
	cfg := r.cfg
	return &cfg, nil
}

func (r *configRepoFake) Save(cfg *entity.Configuracion) error {
	r.cfg = *cfg
	return nil
}

func usecaseDePrueba() (*FacturaUseCase, *facturaRepoFake) {
	repo := nuevoFacturaRepoFake()
	return NewFacturaUseCase(repo, &configRepoFake{cfg: entity.ConfiguracionDefault()}), repo
}

func cantidad(n int64) *decimal.Decimal {
	c := decimal.NewFromInt(n)
	return &c
}

func peticionDePrueba() dto.CrearFacturaRequest {
	return dto.CrearFacturaRequest{
		Fecha:     "2025-03-10",
		Placa:     "abc123",
		Categoria: "auto",
		Grupo:     1,
		IDCliente: "1094567890",
		MedioPago: "efectivo",
		Descuento: decimal.NewFromInt(10),
		Servicios: []dto.ServicioFacturaRequest{
			{Servicio: 1000, Cantidad: cantidad(1), Descripcion: "Lavado general", Valor: decimal.NewFromInt(50000)},
			{Servicio: 5000, Cantidad: cantidad(2), Descripcion: "Aspirado", Valor: decimal.NewFromInt(20000)},
		},
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Caso: los totales se derivan en servidor; la petición nunca los trae.
func TestFacturaUseCase_CrearCalculaTotales(t *testing.T) {
	uc, _ := usecaseDePrueba()

	factura, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	assert.Equal(t, entity.NumeroInicialFactura, factura.Factura)
	assert.True(t, factura.Subtotal.Equal(decimal.NewFromInt(90000)), "subtotal = 50000 + 2×20000")
	assert.True(t, factura.VlrDescuento.Equal(decimal.NewFromInt(9000)), "10% de 90000")
	assert.True(t, factura.Total.Equal(decimal.NewFromInt(81000)))
}

// Caso: la cabecera se normaliza al crear (placa y medio en mayúsculas, categoría capitalizada).
func TestFacturaUseCase_CrearNormalizaCabecera(t *testing.T) {
	uc, _ := usecaseDePrueba()

	factura, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	assert.Equal(t, "ABC123", factura.Placa)
	assert.Equal(t, "Auto", factura.Categoria)
	assert.Equal(t, "EFECTIVO", factura.MedioPago)
}

// Caso: con IVA incluido (configuración por defecto) el total no cambia y
// el valor del IVA se informa como contenido en el total.
func TestFacturaUseCase_CrearInformaIVAIncluido(t *testing.T) {
	uc, _ := usecaseDePrueba()

	factura, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	assert.True(t, factura.IVA.Equal(decimal.NewFromInt(19)))
	assert.Equal(t, "12932.77", factura.VlrIVA.StringFixed(2), "81000 × 19 / 119")
	assert.True(t, factura.Total.Equal(decimal.NewFromInt(81000)))
}

// Caso: sin líneas de servicio la factura es inválida.
func TestFacturaUseCase_CrearSinServicios(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Servicios = nil
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: líneas con valor cero o negativo son inválidas.
func TestFacturaUseCase_CrearValorNoPositivo(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Servicios[0].Valor = decimal.Zero
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = peticionDePrueba()
	in.Servicios[0].Valor = decimal.NewFromInt(-100)
	_, err = uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: una cantidad explícita en cero o negativa es inválida; solo la
// cantidad ausente se interpreta como una unidad.
func TestFacturaUseCase_CrearCantidadNoPositiva(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Servicios[0].Cantidad = cantidad(0)
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = peticionDePrueba()
	in.Servicios[0].Cantidad = cantidad(-1)
	_, err = uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: sin cantidad la línea vale una unidad.
func TestFacturaUseCase_CrearCantidadAusenteValeUno(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Descuento = decimal.Zero
	in.Servicios = []dto.ServicioFacturaRequest{
		{Servicio: 1000, Descripcion: "Lavado general", Valor: decimal.NewFromInt(50000)},
	}
	factura, err := uc.Crear(in)
	require.NoError(t, err)

	assert.True(t, factura.Subtotal.Equal(decimal.NewFromInt(50000)))
	assert.True(t, factura.Servicios[0].Cantidad.Equal(decimal.NewFromInt(1)))
}

// Caso: placa con menos de 5 caracteres es inválida.
func TestFacturaUseCase_CrearPlacaCorta(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Placa = "AB1"
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: fecha ilegible produce error de formato.
func TestFacturaUseCase_CrearFechaInvalida(t *testing.T) {
	uc, _ := usecaseDePrueba()

	in := peticionDePrueba()
	in.Fecha = "10/03/2025"
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrFormatoFecha)
}

// Caso: la numeración avanza de una en una entre creaciones.
func TestFacturaUseCase_NumeracionCreciente(t *testing.T) {
	uc, _ := usecaseDePrueba()

	primera, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)
	segunda, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	assert.Equal(t, primera.Factura+1, segunda.Factura)
}

// Caso: GetByNumero traduce la ausencia a ErrNotFound.
func TestFacturaUseCase_GetByNumeroInexistente(t *testing.T) {
	uc, _ := usecaseDePrueba()

	_, err := uc.GetByNumero(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: Actualizar recalcula los totales y conserva el número.
func TestFacturaUseCase_ActualizarRecalcula(t *testing.T) {
	uc, _ := usecaseDePrueba()

	creada, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	in := peticionDePrueba()
	in.Descuento = decimal.Zero
	in.Servicios = in.Servicios[:1] // solo el lavado de 50000
	actualizada, err := uc.Actualizar(creada.Factura, in)
	require.NoError(t, err)

	assert.Equal(t, creada.Factura, actualizada.Factura)
	assert.True(t, actualizada.Total.Equal(decimal.NewFromInt(50000)))
}

// Caso: Actualizar con número no positivo es inválido.
func TestFacturaUseCase_ActualizarNumeroInvalido(t *testing.T) {
	uc, _ := usecaseDePrueba()

	_, err := uc.Actualizar(0, peticionDePrueba())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: Eliminar y verificar que desaparece.
func TestFacturaUseCase_Eliminar(t *testing.T) {
	uc, repo := usecaseDePrueba()

	creada, err := uc.Crear(peticionDePrueba())
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(creada.Factura))
	assert.Empty(t, repo.facturas)
}
