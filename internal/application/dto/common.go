package dto

import "github.com/jhoicas/catalog-api/internal/domain/validation"

// SearchRequest parámetros de búsqueda paginada (query string).
type SearchRequest struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Sort    string `query:"sort"`
	SortDir string `query:"sort_dir"`
	Filter  string `query:"filter"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Errors solo en errores de validación (campo -> mensajes,
// en el orden en que se declararon las reglas).
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Errors  *validation.FieldErrors `json:"errors,omitempty"`
}
