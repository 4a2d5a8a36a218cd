package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Datos DatosConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // debug, info, warn, error
}

// DatosConfig ubicación de los archivos planos que actúan como base de datos.
type DatosConfig struct {
	Dir string // directorio DbContext con los .csv y config.json
}

// RutaClientes devuelve la ruta del archivo de clientes.
func (c DatosConfig) RutaClientes() string { return filepath.Join(c.Dir, "clientes.csv") }

// RutaVehiculos devuelve la ruta del archivo de vehículos.
func (c DatosConfig) RutaVehiculos() string { return filepath.Join(c.Dir, "vehiculos.csv") }

// RutaFacturas devuelve la ruta del archivo de facturas.
func (c DatosConfig) RutaFacturas() string { return filepath.Join(c.Dir, "facturas.csv") }

// RutaUsuarios devuelve la ruta del archivo de usuarios.
func (c DatosConfig) RutaUsuarios() string { return filepath.Join(c.Dir, "usuarios.csv") }

// RutaPromociones devuelve la ruta del archivo de promociones.
func (c DatosConfig) RutaPromociones() string { return filepath.Join(c.Dir, "promociones.csv") }

// RutaServiciosGenerales devuelve la ruta del archivo de servicios generales.
func (c DatosConfig) RutaServiciosGenerales() string {
	return filepath.Join(c.Dir, "servicios_generales.csv")
}

// RutaServiciosAdicionales devuelve la ruta del archivo de servicios adicionales.
func (c DatosConfig) RutaServiciosAdicionales() string {
	return filepath.Join(c.Dir, "servicios_adicionales.csv")
}

// RutaConfigEmpresa devuelve la ruta del archivo JSON de configuración de empresa.
func (c DatosConfig) RutaConfigEmpresa() string { return filepath.Join(c.Dir, "config.json") }

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lavadero-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Datos: DatosConfig{
			Dir: getString(v, "DATA_DIR", "./DbContext"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "lavadero-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8001),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
