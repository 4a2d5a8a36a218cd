package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrFormatoFecha        = errors.New("formato de fecha inválido, use YYYY-MM-DD")
	ErrRangoFechas         = errors.New("la fecha fin no puede ser anterior a la fecha inicio")
	ErrClienteNoRegistrado = errors.New("el cliente no está registrado")
)
