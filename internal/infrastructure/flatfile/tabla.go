// Package flatfile implementa los repositorios sobre archivos planos delimitados
// por ';' (UTF-8, una fila de encabezado). Cada tabla se lee completa y se
// reescribe completa en cada mutación, vía archivo temporal y rename atómico.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
)

// Delimitador de los archivos de datos.
const delimitador = ';'

// Registro es una fila de la tabla, indexada por nombre de columna.
type Registro map[string]string

// Tabla es un archivo plano con esquema fijo. Todas las operaciones serializan
// con un mutex por tabla: el diseño asume un único proceso dueño de los archivos.
type Tabla struct {
	ruta     string
	columnas []string
	mu       sync.Mutex
}

// NuevaTabla construye la tabla. No toca el disco hasta la primera operación.
func NuevaTabla(ruta string, columnas []string) *Tabla {
	return &Tabla{ruta: ruta, columnas: columnas}
}

// Leer devuelve todas las filas del archivo. Si el archivo no existe lo crea
// vacío con su encabezado (auto-reparación).
func (t *Tabla) Leer() ([]Registro, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.leer()
}

// Mutar ejecuta una transacción de lectura-modificación-escritura: carga todas
// las filas, aplica fn y reescribe el archivo completo de forma atómica.
// Si fn retorna error no se escribe nada.
func (t *Tabla) Mutar(fn func(registros []Registro) ([]Registro, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	registros, err := t.leer()
	if err != nil {
		return err
	}
	nuevos, err := fn(registros)
	if err != nil {
		return err
	}
	return t.escribir(nuevos)
}

func (t *Tabla) leer() ([]Registro, error) {
	if err := t.asegurarArchivo(); err != nil {
		return nil, err
	}
	f, err := os.Open(t.ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", t.ruta, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimitador
	r.FieldsPerRecord = -1 // tolerar filas cortas o largas; los campos faltantes quedan vacíos

	filas, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", t.ruta, err)
	}
	if len(filas) == 0 {
		return nil, nil
	}

	var registros []Registro
	for _, fila := range filas[1:] { // saltar encabezado
		reg := make(Registro, len(t.columnas))
		for i, col := range t.columnas {
			if i < len(fila) {
				reg[col] = fila[i]
			}
		}
		registros = append(registros, reg)
	}
	return registros, nil
}

// escribir reescribe el archivo completo: temporal en el mismo directorio y
// rename, para que un fallo a mitad de escritura no deje el archivo corrupto.
func (t *Tabla) escribir(registros []Registro) error {
	dir := filepath.Dir(t.ruta)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(t.ruta)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	w.Comma = delimitador

	if err := w.Write(t.columnas); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, reg := range registros {
		fila := make([]string, len(t.columnas))
		for i, col := range t.columnas {
			fila[i] = reg[col]
		}
		if err := w.Write(fila); err != nil {
			tmp.Close()
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("volcar %s: %w", t.ruta, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.ruta); err != nil {
		return fmt.Errorf("reemplazar %s: %w", t.ruta, err)
	}
	return nil
}

func (t *Tabla) asegurarArchivo() error {
	if _, err := os.Stat(t.ruta); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", t.ruta, err)
	}
	return t.escribir(nil)
}

// ── Conversión tolerante de campos numéricos ─────────────────────────────────
//
// Las filas parcialmente corruptas no deben abortar la lectura completa:
// un número ilegible se degrada a cero y la fila sigue siendo utilizable.

// ParseEntero convierte texto a entero; valores malformados devuelven 0.
func ParseEntero(s string) int {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return int(d.IntPart())
}

// ParseDecimal convierte texto a decimal; valores malformados devuelven 0.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatEntero serializa un entero para el archivo.
func FormatEntero(n int) string { return fmt.Sprintf("%d", n) }
