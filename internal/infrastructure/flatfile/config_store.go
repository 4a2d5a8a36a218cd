package flatfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigStore)(nil)

// ConfigStore persiste la configuración de empresa como JSON, con el mismo
// esquema de escritura atómica que las tablas.
type ConfigStore struct {
	ruta string
	mu   sync.Mutex
}

// NewConfigStore construye el almacén de configuración.
func NewConfigStore(ruta string) *ConfigStore {
	return &ConfigStore{ruta: ruta}
}

// Get carga la configuración; si el archivo no existe lo crea con los valores por defecto.
func (s *ConfigStore) Get() (*entity.Configuracion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	datos, err := os.ReadFile(s.ruta)
	if os.IsNotExist(err) {
		cfg := entity.ConfiguracionDefault()
		if err := s.guardar(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.ruta, err)
	}
	var cfg entity.Configuracion
	if err := json.Unmarshal(datos, &cfg); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", s.ruta, err)
	}
	return &cfg, nil
}

// Save reemplaza la configuración completa.
func (s *ConfigStore) Save(cfg *entity.Configuracion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guardar(cfg)
}

func (s *ConfigStore) guardar(cfg *entity.Configuracion) error {
	dir := filepath.Dir(s.ruta)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	datos, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar configuración: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.ruta)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(datos); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir configuración: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.ruta); err != nil {
		return fmt.Errorf("reemplazar %s: %w", s.ruta, err)
	}
	return nil
}
