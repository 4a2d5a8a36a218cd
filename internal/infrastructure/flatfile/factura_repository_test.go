package flatfile

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

func repoFacturas(t *testing.T) *FacturaRepo {
	t.Helper()
	return NewFacturaRepository(filepath.Join(t.TempDir(), "facturas.csv"))
}

func facturaDePrueba(servicios ...entity.ServicioFactura) *entity.Factura {
	if len(servicios) == 0 {
		servicios = []entity.ServicioFactura{{
			IDServicio:  1000,
			Cantidad:    decimal.NewFromInt(1),
			Descripcion: "Lavado general",
			Valor:       decimal.NewFromInt(25000),
		}}
	}
	total := decimal.Zero
	for _, s := range servicios {
		total = total.Add(s.Valor.Mul(s.Cantidad))
	}
	return &entity.Factura{
		Fecha:     time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		Placa:     "ABC123",
		Categoria: "Auto",
		Grupo:     1,
		IDCliente: "1094567890",
		MedioPago: "EFECTIVO",
		Bruto:     total,
		Subtotal:  total,
		Total:     total,
		Servicios: servicios,
	}
}

// Caso: la primera factura del archivo recibe el número inicial.
func TestFacturaRepo_PrimeraFacturaNumeroInicial(t *testing.T) {
	repo := repoFacturas(t)

	creada, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)
	assert.Equal(t, entity.NumeroInicialFactura, creada.Numero)
}

// Caso: la numeración es estrictamente creciente (máximo + 1).
func TestFacturaRepo_NumeracionConsecutiva(t *testing.T) {
	repo := repoFacturas(t)

	primera, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)
	segunda, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)
	assert.Equal(t, primera.Numero+1, segunda.Numero)

	// Al borrar la última, el máximo vuelve a ser la primera y su número se reutiliza.
	require.NoError(t, repo.Delete(segunda.Numero))
	tercera, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)
	assert.Equal(t, primera.Numero+1, tercera.Numero)
}

// Caso: una factura con varias líneas se parte en varias filas y se
// reconstruye completa, con sus líneas en orden.
func TestFacturaRepo_AgrupaLineasPorNumero(t *testing.T) {
	repo := repoFacturas(t)

	creada, err := repo.Create(facturaDePrueba(
		entity.ServicioFactura{IDServicio: 1000, Cantidad: decimal.NewFromInt(1), Descripcion: "Lavado general", Valor: decimal.NewFromInt(50000)},
		entity.ServicioFactura{IDServicio: 5000, Cantidad: decimal.NewFromInt(2), Descripcion: "Aspirado", Valor: decimal.NewFromInt(20000)},
	))
	require.NoError(t, err)

	leida, err := repo.GetByNumero(creada.Numero)
	require.NoError(t, err)
	require.NotNil(t, leida)
	require.Len(t, leida.Servicios, 2)
	assert.Equal(t, "Lavado general", leida.Servicios[0].Descripcion)
	assert.Equal(t, "Aspirado", leida.Servicios[1].Descripcion)
	assert.True(t, leida.Servicios[1].Cantidad.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "ABC123", leida.Placa)
}

// Caso: GetByNumero con número inexistente devuelve nil, nil.
func TestFacturaRepo_GetByNumeroInexistente(t *testing.T) {
	repo := repoFacturas(t)

	factura, err := repo.GetByNumero(99999)
	require.NoError(t, err)
	assert.Nil(t, factura)
}

// Caso: GetAll devuelve una factura por número, no una por fila.
func TestFacturaRepo_GetAllAgrupado(t *testing.T) {
	repo := repoFacturas(t)

	_, err := repo.Create(facturaDePrueba(
		entity.ServicioFactura{IDServicio: 1000, Cantidad: decimal.NewFromInt(1), Descripcion: "Lavado", Valor: decimal.NewFromInt(30000)},
		entity.ServicioFactura{IDServicio: 5001, Cantidad: decimal.NewFromInt(1), Descripcion: "Cera", Valor: decimal.NewFromInt(15000)},
	))
	require.NoError(t, err)
	_, err = repo.Create(facturaDePrueba())
	require.NoError(t, err)

	facturas, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, facturas, 2)
	assert.Len(t, facturas[0].Servicios, 2)
	assert.Len(t, facturas[1].Servicios, 1)
}

// Caso: Update reemplaza las líneas conservando el número.
func TestFacturaRepo_UpdateReemplazaLineas(t *testing.T) {
	repo := repoFacturas(t)

	creada, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)

	nueva := facturaDePrueba(entity.ServicioFactura{
		IDServicio:  5002,
		Cantidad:    decimal.NewFromInt(3),
		Descripcion: "Desmanchado",
		Valor:       decimal.NewFromInt(10000),
	})
	actualizada, err := repo.Update(creada.Numero, nueva)
	require.NoError(t, err)
	assert.Equal(t, creada.Numero, actualizada.Numero)

	leida, err := repo.GetByNumero(creada.Numero)
	require.NoError(t, err)
	require.NotNil(t, leida)
	require.Len(t, leida.Servicios, 1)
	assert.Equal(t, "Desmanchado", leida.Servicios[0].Descripcion)
}

// Caso: Update y Delete sobre números inexistentes devuelven ErrNotFound.
func TestFacturaRepo_UpdateDeleteInexistente(t *testing.T) {
	repo := repoFacturas(t)

	_, err := repo.Update(12345, facturaDePrueba())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: Delete elimina todas las filas de la factura y deja las demás intactas.
func TestFacturaRepo_DeleteEliminaTodasLasLineas(t *testing.T) {
	repo := repoFacturas(t)

	primera, err := repo.Create(facturaDePrueba(
		entity.ServicioFactura{IDServicio: 1000, Cantidad: decimal.NewFromInt(1), Descripcion: "Lavado", Valor: decimal.NewFromInt(30000)},
		entity.ServicioFactura{IDServicio: 5001, Cantidad: decimal.NewFromInt(1), Descripcion: "Cera", Valor: decimal.NewFromInt(15000)},
	))
	require.NoError(t, err)
	segunda, err := repo.Create(facturaDePrueba())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(primera.Numero))

	facturas, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, facturas, 1)
	assert.Equal(t, segunda.Numero, facturas[0].Numero)
}
