// Package logger arma el logger zerolog de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New construye el logger: consola legible en development, JSON en cualquier
// otro entorno. Niveles reconocidos: debug, info, warn, error; cualquier otro
// valor cae en info. Redirige también el logger global de zerolog para las
// librerías que lo usen.
func New(env, nivel string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseNivel(nivel)).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}

func parseNivel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
