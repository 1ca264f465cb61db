package dto

import (
	"encoding/json"
	"time"
)

// CreateCategoryRequest entrada para crear una categoría. Los campos son any para que el
// validador vea el tipo JSON recibido (p. ej. una descripción numérica).
type CreateCategoryRequest struct {
	Name        any `json:"name"`
	Description any `json:"description"`
	IsActive    any `json:"is_active"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// HasDescription distingue "description": null (borrar) de la clave ausente (no tocar).
type UpdateCategoryRequest struct {
	Name           any  `json:"name"`
	Description    any  `json:"description"`
	IsActive       any  `json:"is_active"`
	HasDescription bool `json:"-"`
}

// UnmarshalJSON registra si la clave description vino en el cuerpo.
func (r *UpdateCategoryRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateCategoryRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, p.HasDescription = keys["description"]
	*r = UpdateCategoryRequest(p)
	return nil
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
