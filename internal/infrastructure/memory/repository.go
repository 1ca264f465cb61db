// Package memory implementa los repositorios sobre un slice en memoria.
//
// Los repositorios no se sincronizan internamente: asumen acceso de un solo goroutine
// o serializado por el llamador (ver Serialized).
package memory

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// Repository CRUD genérico en memoria. FindAll devuelve el orden de inserción.
type Repository[E entity.Entity] struct {
	items      []E
	entityType string
	clone      func(E) E
}

var _ repository.Repository[entity.Entity] = (*Repository[entity.Entity])(nil)

// NewRepository construye el repositorio. clone (opcional) se aplica al guardar y al leer para que
// los llamadores no compartan memoria con el store.
func NewRepository[E entity.Entity](entityType string, clone func(E) E) *Repository[E] {
	return &Repository[E]{entityType: entityType, clone: clone}
}

func (r *Repository[E]) Save(_ context.Context, e E) error {
	if isNil(e) {
		return r.nilEntityError()
	}
	r.items = append(r.items, r.copy(e))
	return nil
}

// BulkSave agrega todas las entidades o ninguna.
func (r *Repository[E]) BulkSave(_ context.Context, entities []E) error {
	batch := make([]E, 0, len(entities))
	for _, e := range entities {
		if isNil(e) {
			return r.nilEntityError()
		}
		batch = append(batch, r.copy(e))
	}
	r.items = append(r.items, batch...)
	return nil
}

func (r *Repository[E]) Update(_ context.Context, e E) error {
	if isNil(e) {
		return r.nilEntityError()
	}
	idx := r.indexOf(e.ID())
	if idx == -1 {
		return domain.NewNotFoundError(e.ID().Token(), r.entityType)
	}
	r.items[idx] = r.copy(e)
	return nil
}

func (r *Repository[E]) Delete(_ context.Context, id valueobject.Identity) error {
	idx := r.indexOf(id)
	if idx == -1 {
		return domain.NewNotFoundError(id.Token(), r.entityType)
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

func (r *Repository[E]) FindByID(_ context.Context, id valueobject.Identity) (E, error) {
	idx := r.indexOf(id)
	if idx == -1 {
		var zero E
		return zero, nil
	}
	return r.copy(r.items[idx]), nil
}

func (r *Repository[E]) FindAll(_ context.Context) ([]E, error) {
	return r.snapshot(), nil
}

func (r *Repository[E]) EntityType() string { return r.entityType }

// Len cantidad de entidades almacenadas.
func (r *Repository[E]) Len() int { return len(r.items) }

func (r *Repository[E]) indexOf(id valueobject.Identity) int {
	return slices.IndexFunc(r.items, func(it E) bool { return it.ID().Equals(id) })
}

func (r *Repository[E]) snapshot() []E {
	out := make([]E, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, r.copy(it))
	}
	return out
}

func (r *Repository[E]) nilEntityError() error {
	return fmt.Errorf("%s nil: %w", r.entityType, domain.ErrInvalidInput)
}

// isNil cubre E puntero o interfaz sin valor.
func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (r *Repository[E]) copy(e E) E {
	if r.clone == nil {
		return e
	}
	return r.clone(e)
}
