package flatfile

import (
	"strconv"
	"time"

	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
	"github.com/spacar/lavadero-api/internal/domain/repository"
)

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

var columnasPromociones = []string{
	"ID_PROMOCION", "DESCRIPCION", "FECHA_INICIO", "FECHA_FIN", "PORCENTAJE", "ESTADO",
}

const formatoFechaPromo = "2006-01-02"

// PromocionRepo implementación de PromocionRepository sobre promociones.csv.
type PromocionRepo struct {
	tabla *Tabla
}

// NewPromocionRepository construye el adaptador.
func NewPromocionRepository(ruta string) *PromocionRepo {
	return &PromocionRepo{tabla: NuevaTabla(ruta, columnasPromociones)}
}

// Create asigna el siguiente ID (desde 1) si no viene uno; si viene y ya existe, ErrDuplicate.
func (r *PromocionRepo) Create(promocion *entity.Promocion) (*entity.Promocion, error) {
	err := r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		if promocion.IDPromocion == 0 {
			max := 0
			for _, reg := range registros {
				if n := ParseEntero(reg["ID_PROMOCION"]); n > max {
					max = n
				}
			}
			promocion.IDPromocion = max + 1
		} else {
			for _, reg := range registros {
				if ParseEntero(reg["ID_PROMOCION"]) == promocion.IDPromocion {
					return nil, domain.ErrDuplicate
				}
			}
		}
		return append(registros, filaDePromocion(promocion)), nil
	})
	if err != nil {
		return nil, err
	}
	return promocion, nil
}

// GetByID devuelve nil, nil si la promoción no existe.
func (r *PromocionRepo) GetByID(id int) (*entity.Promocion, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	for _, reg := range registros {
		if ParseEntero(reg["ID_PROMOCION"]) == id {
			return promocionDeFila(reg), nil
		}
	}
	return nil, nil
}

// GetAll devuelve todas las promociones en el orden del archivo.
func (r *PromocionRepo) GetAll() ([]*entity.Promocion, error) {
	registros, err := r.tabla.Leer()
	if err != nil {
		return nil, err
	}
	promociones := make([]*entity.Promocion, 0, len(registros))
	for _, reg := range registros {
		promociones = append(promociones, promocionDeFila(reg))
	}
	return promociones, nil
}

// Update reemplaza la fila de la promoción; ErrNotFound si el ID no existe.
func (r *PromocionRepo) Update(promocion *entity.Promocion) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if ParseEntero(reg["ID_PROMOCION"]) == promocion.IDPromocion {
				registros[i] = filaDePromocion(promocion)
				return registros, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la fila de la promoción; ErrNotFound si el ID no existe.
func (r *PromocionRepo) Delete(id int) error {
	return r.tabla.Mutar(func(registros []Registro) ([]Registro, error) {
		for i, reg := range registros {
			if ParseEntero(reg["ID_PROMOCION"]) == id {
				return append(registros[:i], registros[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func filaDePromocion(p *entity.Promocion) Registro {
	return Registro{
		"ID_PROMOCION": FormatEntero(p.IDPromocion),
		"DESCRIPCION":  p.Descripcion,
		"FECHA_INICIO": formatearFechaOpcional(p.FechaInicio),
		"FECHA_FIN":    formatearFechaOpcional(p.FechaFin),
		"PORCENTAJE":   p.Porcentaje.String(),
		"ESTADO":       strconv.FormatBool(p.Estado),
	}
}

func promocionDeFila(reg Registro) *entity.Promocion {
	estado, _ := strconv.ParseBool(reg["ESTADO"])
	return &entity.Promocion{
		IDPromocion: ParseEntero(reg["ID_PROMOCION"]),
		Descripcion: reg["DESCRIPCION"],
		FechaInicio: parseFechaOpcional(reg["FECHA_INICIO"]),
		FechaFin:    parseFechaOpcional(reg["FECHA_FIN"]),
		Porcentaje:  ParseDecimal(reg["PORCENTAJE"]),
		Estado:      estado,
	}
}

func formatearFechaOpcional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(formatoFechaPromo)
}

func parseFechaOpcional(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(formatoFechaPromo, s)
	if err != nil {
		return nil
	}
	return &t
}
