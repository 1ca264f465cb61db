package domain

import (
	"errors"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain/validation"
)

// Errores de dominio. Los tipos de más abajo envuelven estos sentinelas para errors.Is.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrInvalidIdentity  = errors.New("identificador inválido")
	ErrEntityValidation = errors.New("entidad inválida")
)

// InvalidIdentityError se produce al construir una identidad con un token mal formado.
type InvalidIdentityError struct {
	Token string
}

func (e *InvalidIdentityError) Error() string {
	return "ID must be a valid UUID"
}

// Is permite errors.Is(err, ErrInvalidIdentity).
func (e *InvalidIdentityError) Is(target error) bool {
	return target == ErrInvalidIdentity
}

// NotFoundError indica que update/delete no encontró la entidad; el store no se modificó.
type NotFoundError struct {
	ID         string
	EntityType string
}

// NewNotFoundError construye el error con el id buscado y la etiqueta del tipo de entidad.
func NewNotFoundError(id, entityType string) *NotFoundError {
	return &NotFoundError{ID: id, EntityType: entityType}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", e.EntityType, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EntityValidationError agrega todos los errores de reglas por campo.
type EntityValidationError struct {
	Fields validation.FieldErrors
}

// NewEntityValidationError construye el error a partir del mapa ordenado de errores.
func NewEntityValidationError(fields validation.FieldErrors) *EntityValidationError {
	return &EntityValidationError{Fields: fields}
}

func (e *EntityValidationError) Error() string {
	return "Entity Validation Error"
}

func (e *EntityValidationError) Is(target error) bool {
	return target == ErrEntityValidation
}

// AsValidation devuelve el EntityValidationError contenido en err, si existe.
func AsValidation(err error) (*EntityValidationError, bool) {
	var ve *EntityValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsNotFound devuelve el NotFoundError contenido en err, si existe.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
