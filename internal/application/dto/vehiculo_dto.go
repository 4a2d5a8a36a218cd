package dto

// VehiculoRequest alta o modificación de vehículo. El cliente se referencia por documento.
type VehiculoRequest struct {
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

// VehiculoResponse vehículo tal como se expone por la API.
type VehiculoResponse struct {
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
