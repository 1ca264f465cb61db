package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// Serialized candado externo para compartir un repositorio en memoria entre goroutines
// (p. ej. handlers HTTP concurrentes). Cada operación se ejecuta con el mutex tomado.
type Serialized[E entity.Entity, F any] struct {
	mu    sync.Mutex
	inner repository.SearchableRepository[E, F]
}

// Serialize envuelve inner.
func Serialize[E entity.Entity, F any](inner repository.SearchableRepository[E, F]) *Serialized[E, F] {
	return &Serialized[E, F]{inner: inner}
}

func (s *Serialized[E, F]) Save(ctx context.Context, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Save(ctx, e)
}

func (s *Serialized[E, F]) BulkSave(ctx context.Context, entities []E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.BulkSave(ctx, entities)
}

func (s *Serialized[E, F]) Update(ctx context.Context, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Update(ctx, e)
}

func (s *Serialized[E, F]) Delete(ctx context.Context, id valueobject.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(ctx, id)
}

func (s *Serialized[E, F]) FindByID(ctx context.Context, id valueobject.Identity) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.FindByID(ctx, id)
}

func (s *Serialized[E, F]) FindAll(ctx context.Context) ([]E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.FindAll(ctx)
}

func (s *Serialized[E, F]) EntityType() string { return s.inner.EntityType() }

func (s *Serialized[E, F]) SortableFields() []string { return s.inner.SortableFields() }

func (s *Serialized[E, F]) Search(ctx context.Context, params repository.SearchParams[F]) (repository.SearchResult[E], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Search(ctx, params)
}
