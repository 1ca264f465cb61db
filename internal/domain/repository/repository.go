package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// Repository puerto de persistencia genérico, con clave en la identidad de la entidad (DIP).
//
// Save, BulkSave y Update rechazan entidades nil con un error que envuelve domain.ErrInvalidInput;
// BulkSave no guarda nada en ese caso.
// Update y Delete devuelven *domain.NotFoundError si la identidad no existe y dejan el store sin cambios.
// FindByID devuelve el valor cero de E (nil para entidades puntero) y error nil si no existe.
// Los errores de I/O del backend se propagan envueltos, sin reintentos.
type Repository[E entity.Entity] interface {
	Save(ctx context.Context, e E) error
	BulkSave(ctx context.Context, entities []E) error
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, id valueobject.Identity) error
	FindByID(ctx context.Context, id valueobject.Identity) (E, error)
	FindAll(ctx context.Context) ([]E, error)
	// EntityType etiqueta del tipo de entidad, usada en los mensajes de NotFoundError.
	EntityType() string
}

// SearchableRepository agrega filtro, orden y paginación al contrato base.
// La interpretación de F pertenece a cada backend concreto.
type SearchableRepository[E entity.Entity, F any] interface {
	Repository[E]
	SortableFields() []string
	Search(ctx context.Context, params SearchParams[F]) (SearchResult[E], error)
}
