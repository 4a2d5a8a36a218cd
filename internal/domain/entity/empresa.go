package entity

import "github.com/shopspring/decimal"

// Empresa datos del negocio que aparecen en recibos y controlan el IVA de facturación.
type Empresa struct {
	Nombre      string          `json:"nombre"`
	NIT         string          `json:"nit"`
	Telefono    string          `json:"telefono"`
	Direccion   string          `json:"direccion"`
	IVA         bool            `json:"iva"`
	ValorIVA    decimal.Decimal `json:"valor_iva"`
	IVAIncluido bool            `json:"iva_incluido"`
	Logo        string          `json:"logo"`
}

// Tema colores de la interfaz (se persisten para el frontend).
type Tema struct {
	Primario           string `json:"primario"`
	ForegroundPrimario string `json:"foregroundPrimario"`
}

// Configuracion archivo config.json completo.
type Configuracion struct {
	Empresa Empresa `json:"empresa"`
	Tema    Tema    `json:"tema"`
}

// ConfiguracionDefault valores usados cuando el archivo de configuración no existe.
func ConfiguracionDefault() Configuracion {
	return Configuracion{
		Empresa: Empresa{
			Nombre:      "SPA Car Service",
			NIT:         "900000000-0",
			Telefono:    "+57 1234567890",
			Direccion:   "Dirección por defecto",
			IVA:         true,
			ValorIVA:    decimal.NewFromInt(19),
			IVAIncluido: true,
			Logo:        "",
		},
		Tema: Tema{
			Primario:           "100 80% 30%",
			ForegroundPrimario: "0 0% 100%",
		},
	}
}
