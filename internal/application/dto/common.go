package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PaginationResponse metadatos de página para historiales.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// SuccessResponse respuesta mínima para operaciones sin cuerpo.
type SuccessResponse struct {
	Success bool `json:"success"`
}
