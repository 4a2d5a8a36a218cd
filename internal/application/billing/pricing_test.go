package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Caso: subtotal = Σ valor × cantidad por línea.
func TestCalcularSubtotal(t *testing.T) {
	servicios := []entity.ServicioFactura{
		{Valor: dec(50000), Cantidad: dec(1)},
		{Valor: dec(20000), Cantidad: dec(2)},
	}
	assert.True(t, CalcularSubtotal(servicios).Equal(dec(90000)))
}

// Caso: cantidad en cero cuenta como 1.
func TestCalcularSubtotal_CantidadCeroCuentaComoUno(t *testing.T) {
	servicios := []entity.ServicioFactura{
		{Valor: dec(25000)}, // cantidad sin especificar
	}
	assert.True(t, CalcularSubtotal(servicios).Equal(dec(25000)))
}

// Caso: subtotal 100 con descuento 10% → vlr_descuento 10, total 90.
func TestAplicarDescuento(t *testing.T) {
	valores, err := AplicarDescuento(dec(100), dec(10))
	require.NoError(t, err)

	assert.True(t, valores.Subtotal.Equal(dec(100)))
	assert.True(t, valores.Descuento.Equal(dec(10)))
	assert.True(t, valores.VlrDescuento.Equal(dec(10)))
	assert.True(t, valores.Total.Equal(dec(90)))
}

// Caso: el valor del descuento se redondea a 2 decimales.
func TestAplicarDescuento_Redondeo(t *testing.T) {
	valores, err := AplicarDescuento(decimal.NewFromFloat(33333), decimal.NewFromFloat(7.5))
	require.NoError(t, err)

	assert.Equal(t, "2499.98", valores.VlrDescuento.StringFixed(2))
	assert.Equal(t, "30833.02", valores.Total.StringFixed(2))
}

// Caso: porcentajes fuera de [0, 100] son inválidos.
func TestAplicarDescuento_PorcentajeFueraDeRango(t *testing.T) {
	_, err := AplicarDescuento(dec(100), dec(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = AplicarDescuento(dec(100), dec(101))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = AplicarDescuento(dec(100), dec(0))
	assert.NoError(t, err, "0% es válido")

	_, err = AplicarDescuento(dec(100), dec(100))
	assert.NoError(t, err, "100% es válido")
}

// Caso: IVA deshabilitado no altera el total.
func TestAplicarIVA_Deshabilitado(t *testing.T) {
	empresa := &entity.Empresa{IVA: false, ValorIVA: dec(19)}

	porcentaje, vlrIVA, total := AplicarIVA(dec(100000), empresa)
	assert.True(t, porcentaje.IsZero())
	assert.True(t, vlrIVA.IsZero())
	assert.True(t, total.Equal(dec(100000)))
}

// Caso: IVA incluido informa el impuesto contenido sin cambiar el total.
func TestAplicarIVA_Incluido(t *testing.T) {
	empresa := &entity.Empresa{IVA: true, ValorIVA: dec(19), IVAIncluido: true}

	porcentaje, vlrIVA, total := AplicarIVA(dec(119000), empresa)
	assert.True(t, porcentaje.Equal(dec(19)))
	assert.Equal(t, "19000.00", vlrIVA.StringFixed(2))
	assert.True(t, total.Equal(dec(119000)), "con IVA incluido el total no cambia")
}

// Caso: IVA no incluido se suma al total.
func TestAplicarIVA_NoIncluido(t *testing.T) {
	empresa := &entity.Empresa{IVA: true, ValorIVA: dec(19), IVAIncluido: false}

	porcentaje, vlrIVA, total := AplicarIVA(dec(100000), empresa)
	assert.True(t, porcentaje.Equal(dec(19)))
	assert.Equal(t, "19000.00", vlrIVA.StringFixed(2))
	assert.True(t, total.Equal(dec(119000)))
}
