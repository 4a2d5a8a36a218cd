package flatfile

import (
	"strconv"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// Los catálogos de servicios también son denormalizados: un servicio general
// ocupa una fila por combinación categoría+grupo; un adicional, una fila por
// categoría a la que aplica.
var (
	columnasGenerales = []string{
		"ID_SERVICIO", "NOMBRE", "TIPO_SERVICIO", "CATEGORIA", "GRUPO", "PRECIO",
	}
	columnasAdicionales = []string{
		"ID_SERVICIO", "NOMBRE", "TIPO_SERVICIO", "CATEGORIA",
		"PRECIO_VARIABLE", "VARIABLE", "PRECIO_BASE",
	}
)

// ServicioRepo implementación de ServicioRepository sobre los dos archivos de catálogo.
type ServicioRepo struct {
	generales   *Tabla
	adicionales *Tabla
}

// NewServicioRepository construye el adaptador con ambos catálogos.
func NewServicioRepository(rutaGenerales, rutaAdicionales string) *ServicioRepo {
	return &ServicioRepo{
		generales:   NuevaTabla(rutaGenerales, columnasGenerales),
		adicionales: NuevaTabla(rutaAdicionales, columnasAdicionales),
	}
}

// CreateGeneral asigna el siguiente ID del catálogo general y persiste una fila por categoría+grupo.
func (r *ServicioRepo) CreateGeneral(servicio *entity.ServicioGeneral) (*entity.ServicioGeneral, error) {
	err := r.generales.Mutar(func(registros []Registro) ([]Registro, error) {
		servicio.IDServicio = siguienteID(registros, entity.IDInicialServicioGeneral)
		return append(registros, filasDeGeneral(servicio)...), nil
	})
	if err != nil {
		return nil, err
	}
	return servicio, nil
}

// CreateAdicional asigna el siguiente ID del catálogo adicional y persiste una fila por categoría.
func (r *ServicioRepo) CreateAdicional(servicio *entity.ServicioAdicional) (*entity.ServicioAdicional, error) {
	err := r.adicionales.Mutar(func(registros []Registro) ([]Registro, error) {
		servicio.IDServicio = siguienteID(registros, entity.IDInicialServicioAdicional)
		return append(registros, filasDeAdicional(servicio)...), nil
	})
	if err != nil {
		return nil, err
	}
	return servicio, nil
}

// GetGeneralByID reagrupa las filas del servicio. nil, nil si no existe.
func (r *ServicioRepo) GetGeneralByID(id int) (*entity.ServicioGeneral, error) {
	registros, err := r.generales.Leer()
	if err != nil {
		return nil, err
	}
	for _, s := range agruparGenerales(registros) {
		if s.IDServicio == id {
			return s, nil
		}
	}
	return nil, nil
}

// GetAdicionalByID reagrupa las filas del servicio. nil, nil si no existe.
func (r *ServicioRepo) GetAdicionalByID(id int) (*entity.ServicioAdicional, error) {
	registros, err := r.adicionales.Leer()
	if err != nil {
		return nil, err
	}
	for _, s := range agruparAdicionales(registros) {
		if s.IDServicio == id {
			return s, nil
		}
	}
	return nil, nil
}

// GetAllGenerales devuelve el catálogo general completo.
func (r *ServicioRepo) GetAllGenerales() ([]*entity.ServicioGeneral, error) {
	registros, err := r.generales.Leer()
	if err != nil {
		return nil, err
	}
	return agruparGenerales(registros), nil
}

// GetAllAdicionales devuelve el catálogo adicional completo.
func (r *ServicioRepo) GetAllAdicionales() ([]*entity.ServicioAdicional, error) {
	registros, err := r.adicionales.Leer()
	if err != nil {
		return nil, err
	}
	return agruparAdicionales(registros), nil
}

// ExisteNombre busca el nombre exacto en el catálogo indicado.
func (r *ServicioRepo) ExisteNombre(tipoServicio, nombre string) (bool, error) {
	tabla := r.generales
	if tipoServicio == entity.TipoServicioAdicional {
		tabla = r.adicionales
	}
	registros, err := tabla.Leer()
	if err != nil {
		return false, err
	}
	for _, reg := range registros {
		if reg["NOMBRE"] == nombre {
			return true, nil
		}
	}
	return false, nil
}

// UpdateGeneral reemplaza todas las filas del servicio; ErrNotFound si el ID no existe.
func (r *ServicioRepo) UpdateGeneral(servicio *entity.ServicioGeneral) error {
	return r.generales.Mutar(func(registros []Registro) ([]Registro, error) {
		restantes, eliminadas := separarPorID(registros, servicio.IDServicio)
		if eliminadas == 0 {
			return nil, domain.ErrNotFound
		}
		return append(restantes, filasDeGeneral(servicio)...), nil
	})
}

// UpdateAdicional reemplaza todas las filas del servicio; ErrNotFound si el ID no existe.
func (r *ServicioRepo) UpdateAdicional(servicio *entity.ServicioAdicional) error {
	return r.adicionales.Mutar(func(registros []Registro) ([]Registro, error) {
		restantes, eliminadas := separarPorID(registros, servicio.IDServicio)
		if eliminadas == 0 {
			return nil, domain.ErrNotFound
		}
		return append(restantes, filasDeAdicional(servicio)...), nil
	})
}

// DeleteGeneral elimina todas las filas del servicio general.
func (r *ServicioRepo) DeleteGeneral(id int) error {
	return borrarPorID(r.generales, id)
}

// DeleteAdicional elimina todas las filas del servicio adicional.
func (r *ServicioRepo) DeleteAdicional(id int) error {
	return borrarPorID(r.adicionales, id)
}

func borrarPorID(tabla *Tabla, id int) error {
	return tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		restantes, eliminadas := separarPorID(registros, id)
		if eliminadas == 0 {
			return nil, domain.ErrNotFound
		}
		return restantes, nil
	})
}

func separarPorID(registros []Registro, id int) (restantes []Registro, eliminadas int) {
	for _, reg := range registros {
		if ParseEntero(reg["ID_SERVICIO"]) == id {
			eliminadas++
			continue
		}
		restantes = append(restantes, reg)
	}
	return restantes, eliminadas
}

func siguienteID(registros []Registro, inicial int) int {
	max := 0
	for _, reg := range registros {
		if n := ParseEntero(reg["ID_SERVICIO"]); n > max {
			max = n
		}
	}
	if max == 0 {
		return inicial
	}
	return max + 1
}

func filasDeGeneral(s *entity.ServicioGeneral) []Registro {
	var filas []Registro
	for _, cat := range s.Valores {
		for _, grupo := range cat.Grupos {
			filas = append(filas, Registro{
				"ID_SERVICIO":   FormatEntero(s.IDServicio),
				"NOMBRE":        s.Nombre,
				"TIPO_SERVICIO": s.TipoServicio,
				"CATEGORIA":     cat.Categoria,
				"GRUPO":         FormatEntero(grupo.ID),
				"PRECIO":        grupo.Precio.String(),
			})
		}
	}
	return filas
}

func filasDeAdicional(s *entity.ServicioAdicional) []Registro {
	filas := make([]Registro, 0, len(s.Categorias))
	for _, cat := range s.Categorias {
		filas = append(filas, Registro{
			"ID_SERVICIO":     FormatEntero(s.IDServicio),
			"NOMBRE":          s.Nombre,
			"TIPO_SERVICIO":   s.TipoServicio,
			"CATEGORIA":       cat,
			"PRECIO_VARIABLE": strconv.FormatBool(s.PrecioVariable),
			"VARIABLE":        s.Variable,
			"PRECIO_BASE":     s.PrecioBase.String(),
		})
	}
	return filas
}

func agruparGenerales(registros []Registro) []*entity.ServicioGeneral {
	var orden []int
	porID := make(map[int]*entity.ServicioGeneral)
	for _, reg := range registros {
		id := ParseEntero(reg["ID_SERVICIO"])
		s, visto := porID[id]
		if !visto {
			s = &entity.ServicioGeneral{
				IDServicio:   id,
				Nombre:       reg["NOMBRE"],
				TipoServicio: reg["TIPO_SERVICIO"],
			}
			porID[id] = s
			orden = append(orden, id)
		}
		categoria := reg["CATEGORIA"]
		grupo := entity.GrupoValor{
			ID:     ParseEntero(reg["GRUPO"]),
			Precio: ParseDecimal(reg["PRECIO"]),
		}
		agregado := false
		for i := range s.Valores {
			if s.Valores[i].Categoria == categoria {
				s.Valores[i].Grupos = append(s.Valores[i].Grupos, grupo)
				agregado = true
				break
			}
		}
		if !agregado {
			s.Valores = append(s.Valores, entity.CategoriaValor{
				Categoria: categoria,
				Grupos:    []entity.GrupoValor{grupo},
			})
		}
	}
	servicios := make([]*entity.ServicioGeneral, 0, len(orden))
	for _, id := range orden {
		servicios = append(servicios, porID[id])
	}
	return servicios
}

func agruparAdicionales(registros []Registro) []*entity.ServicioAdicional {
	var orden []int
	porID := make(map[int]*entity.ServicioAdicional)
	for _, reg := range registros {
		id := ParseEntero(reg["ID_SERVICIO"])
		s, visto := porID[id]
		if !visto {
			variable, _ := strconv.ParseBool(reg["PRECIO_VARIABLE"])
			s = &entity.ServicioAdicional{
				IDServicio:     id,
				Nombre:         reg["NOMBRE"],
				TipoServicio:   reg["TIPO_SERVICIO"],
				PrecioVariable: variable,
				Variable:       reg["VARIABLE"],
				PrecioBase:     ParseDecimal(reg["PRECIO_BASE"]),
			}
			porID[id] = s
			orden = append(orden, id)
		}
		s.Categorias = append(s.Categorias, reg["CATEGORIA"])
	}
	servicios := make([]*entity.ServicioAdicional, 0, len(orden))
	for _, id := range orden {
		servicios = append(servicios, porID[id])
	}
	return servicios
}
