package entity

// Categorías canónicas de vehículo. Los resúmenes de ventas siempre reportan
// las tres, con ceros cuando no hay datos.
var CategoriasVehiculo = []string{"Moto", "Auto", "Cuatrimoto"}

// Vehiculo registrado en el lavadero, asociado a un cliente por su documento.
type Vehiculo struct {
	Placa            string `json:"placa"`
	DocumentoCliente string `json:"documento_cliente"`
	Categoria        string `json:"categoria"`
	Segmento         string `json:"segmento,omitempty"`
	Marca            string `json:"marca"`
	Linea            string `json:"linea,omitempty"`
	Modelo           int    `json:"modelo"`
	Cilindrada       int    `json:"cilindrada"`
	Grupo            int    `json:"grupo"`
}

// CategoriaValida indica si la categoría pertenece al catálogo canónico.
func CategoriaValida(c string) bool {
	for _, v := range CategoriasVehiculo {
		if v == c {
			return true
		}
	}
	return false
}

// Normalizar aplica las reglas de presentación: placa y línea en mayúsculas, marca capitalizada.
func (v *Vehiculo) Normalizar() {
	v.Placa = normalizarMayusculas(v.Placa)
	v.Marca = capitalizar(v.Marca)
	v.Linea = normalizarMayusculas(v.Linea)
	v.Categoria = capitalizar(v.Categoria)
}
