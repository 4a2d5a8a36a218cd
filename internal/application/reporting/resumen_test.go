package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// Caso: sin ventas el resumen devuelve el esqueleto completo en ceros.
func TestResumen_SinVentasEsqueletoEnCeros(t *testing.T) {
	uc := reporteDePrueba()

	resumen, err := uc.GetResumen("", "")
	require.NoError(t, err)

	assert.True(t, resumen.TotalVentas.IsZero())
	assert.Zero(t, resumen.NumeroFacturas)
	assert.Empty(t, resumen.VentasDiarias)

	require.Len(t, resumen.VentasMediosPago, 4, "los cuatro medios canónicos siempre están presentes")
	for _, mp := range resumen.VentasMediosPago {
		assert.True(t, mp.TotalVentas.IsZero())
		assert.Zero(t, mp.NumeroFacturas)
	}
	assert.Equal(t, "TR", resumen.VentasMediosPago[0].MedioPago)
	assert.Equal(t, "TD", resumen.VentasMediosPago[1].MedioPago)
	assert.Equal(t, "TC", resumen.VentasMediosPago[2].MedioPago)
	assert.Equal(t, "EF", resumen.VentasMediosPago[3].MedioPago)
}

// Caso: el medio de pago almacenado se clasifica por sus dos primeros caracteres.
func TestResumen_ClasificaMedioPorPrefijo(t *testing.T) {
	uc := reporteDePrueba(
		facturaVenta(10000, "2025-03-10", "ABC123", "111", "TRANSFERENCIA", "Auto", 30000),
		facturaVenta(10001, "2025-03-10", "XYZ789", "222", "EFECTIVO", "Moto", 15000),
		facturaVenta(10002, "2025-03-10", "DEF456", "333", "CHEQUE", "Auto", 99999),
	)

	resumen, err := uc.GetResumen("", "")
	require.NoError(t, err)

	porMedio := make(map[string]decimal.Decimal)
	for _, mp := range resumen.VentasMediosPago {
		porMedio[mp.MedioPago] = mp.TotalVentas
	}
	assert.True(t, porMedio["TR"].Equal(decimal.NewFromInt(30000)))
	assert.True(t, porMedio["EF"].Equal(decimal.NewFromInt(15000)))
	assert.True(t, porMedio["TD"].IsZero())
	assert.True(t, porMedio["TC"].IsZero())

	// CHEQUE no es canónico: no aparece en el desglose pero sí en el total general.
	assert.True(t, resumen.TotalVentas.Equal(decimal.NewFromInt(144999)))
	assert.Equal(t, 3, resumen.NumeroFacturas)
}

// Caso: las ventas diarias llevan siempre las tres categorías canónicas,
// en ceros cuando no hay ventas de esa categoría.
func TestResumen_VentasDiariasConCategorias(t *testing.T) {
	uc := reporteDePrueba(
		facturaVenta(10000, "2025-03-10", "ABC123", "111", "EFECTIVO", "Auto", 50000, 20000, 20000),
		facturaVenta(10001, "2025-03-10", "XYZ789", "222", "EFECTIVO", "Moto", 15000),
		facturaVenta(10002, "2025-03-11", "ABC123", "111", "EFECTIVO", "Auto", 30000),
	)

	resumen, err := uc.GetResumen("2025-03-10", "2025-03-11")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resumen.FechaInicio)
	assert.Equal(t, "2025-03-11", resumen.FechaFin)
	require.Len(t, resumen.VentasDiarias, 2, "un registro por día con ventas, orden cronológico")

	dia := resumen.VentasDiarias[0]
	assert.Equal(t, "2025-03-10", dia.Fecha)
	assert.True(t, dia.TotalVentas.Equal(decimal.NewFromInt(105000)))
	assert.Equal(t, 2, dia.NumeroFacturas)

	require.Len(t, dia.Categorias, 3)
	porCategoria := make(map[string]decimal.Decimal)
	for _, c := range dia.Categorias {
		porCategoria[c.Categoria] = c.TotalVentas
	}
	assert.True(t, porCategoria["Auto"].Equal(decimal.NewFromInt(90000)))
	assert.True(t, porCategoria["Moto"].Equal(decimal.NewFromInt(15000)))
	assert.True(t, porCategoria["Cuatrimoto"].IsZero())

	assert.Equal(t, "2025-03-11", resumen.VentasDiarias[1].Fecha)
}

// Caso: las líneas con cantidad mayor a uno aportan valor por cantidad al
// resumen, igual que en el subtotal de la factura; cantidad cero vale una unidad.
func TestResumen_SumaValorPorCantidad(t *testing.T) {
	fecha, _ := time.Parse("2006-01-02", "2025-03-10")
	factura := &entity.Factura{
		Numero:    10000,
		Fecha:     fecha,
		Placa:     "ABC123",
		IDCliente: "111",
		MedioPago: "EFECTIVO",
		Categoria: "Auto",
		Servicios: []entity.ServicioFactura{
			{Cantidad: decimal.NewFromInt(1), Valor: decimal.NewFromInt(50000)},
			{Cantidad: decimal.NewFromInt(2), Valor: decimal.NewFromInt(20000)},
			{Valor: decimal.NewFromInt(5000)}, // cantidad sin especificar
		},
	}
	uc := reporteDePrueba(factura)

	resumen, err := uc.GetResumen("", "")
	require.NoError(t, err)

	// 50000 + 2×20000 + 5000
	assert.True(t, resumen.TotalVentas.Equal(decimal.NewFromInt(95000)),
		"total_ventas = %s, esperado 95000", resumen.TotalVentas)
	assert.Equal(t, 1, resumen.NumeroFacturas)

	porMedio := make(map[string]decimal.Decimal)
	for _, mp := range resumen.VentasMediosPago {
		porMedio[mp.MedioPago] = mp.TotalVentas
	}
	assert.True(t, porMedio["EF"].Equal(decimal.NewFromInt(95000)))

	require.Len(t, resumen.VentasDiarias, 1)
	dia := resumen.VentasDiarias[0]
	assert.True(t, dia.TotalVentas.Equal(decimal.NewFromInt(95000)))
	porCategoria := make(map[string]decimal.Decimal)
	for _, c := range dia.Categorias {
		porCategoria[c.Categoria] = c.TotalVentas
	}
	assert.True(t, porCategoria["Auto"].Equal(decimal.NewFromInt(95000)))
}

// Caso: una factura con varias líneas cuenta una sola vez en numero_facturas.
func TestResumen_FacturaConVariasLineasCuentaUnaVez(t *testing.T) {
	uc := reporteDePrueba(
		facturaVenta(10000, "2025-03-10", "ABC123", "111", "EFECTIVO", "Auto", 50000, 20000, 20000),
	)

	resumen, err := uc.GetResumen("", "")
	require.NoError(t, err)

	assert.True(t, resumen.TotalVentas.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, 1, resumen.NumeroFacturas)
}
