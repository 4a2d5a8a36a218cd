package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Caso: el nivel configurado se aplica y los valores desconocidos caen en info.
func TestNew_NivelConfigurado(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("production", "debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("production", "WARN").GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, New("production", "error").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("production", "").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("production", "verbose").GetLevel())
}
