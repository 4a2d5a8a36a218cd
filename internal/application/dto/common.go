package dto

// SuccessResponse sobre de respuesta exitosa: {status, code, data, message?}.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse sobre de respuesta de error: {status, type, message, code}.
type ErrorResponse struct {
	Status  string `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
