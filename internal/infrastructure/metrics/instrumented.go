package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// Instrumented decorador que mide cada operación de un SearchableRepository.
// No altera resultados ni errores.
type Instrumented[E entity.Entity, F any] struct {
	inner repository.SearchableRepository[E, F]
	m     *Metrics
}

// Instrument envuelve inner. m nil deja el repositorio sin medir.
func Instrument[E entity.Entity, F any](inner repository.SearchableRepository[E, F], m *Metrics) *Instrumented[E, F] {
	return &Instrumented[E, F]{inner: inner, m: m}
}

func (r *Instrumented[E, F]) observe(op string, start time.Time, err error) {
	outcome := OutcomeOK
	switch {
	case errors.Is(err, domain.ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	r.m.Observe(r.inner.EntityType(), op, outcome, start)
}

func (r *Instrumented[E, F]) Save(ctx context.Context, e E) error {
	start := time.Now()
	err := r.inner.Save(ctx, e)
	r.observe("save", start, err)
	return err
}

func (r *Instrumented[E, F]) BulkSave(ctx context.Context, entities []E) error {
	start := time.Now()
	err := r.inner.BulkSave(ctx, entities)
	r.observe("bulk_save", start, err)
	return err
}

func (r *Instrumented[E, F]) Update(ctx context.Context, e E) error {
	start := time.Now()
	err := r.inner.Update(ctx, e)
	r.observe("update", start, err)
	return err
}

func (r *Instrumented[E, F]) Delete(ctx context.Context, id valueobject.Identity) error {
	start := time.Now()
	err := r.inner.Delete(ctx, id)
	r.observe("delete", start, err)
	return err
}

func (r *Instrumented[E, F]) FindByID(ctx context.Context, id valueobject.Identity) (E, error) {
	start := time.Now()
	e, err := r.inner.FindByID(ctx, id)
	r.observe("find_by_id", start, err)
	return e, err
}

func (r *Instrumented[E, F]) FindAll(ctx context.Context) ([]E, error) {
	start := time.Now()
	out, err := r.inner.FindAll(ctx)
	r.observe("find_all", start, err)
	return out, err
}

func (r *Instrumented[E, F]) Search(ctx context.Context, params repository.SearchParams[F]) (repository.SearchResult[E], error) {
	start := time.Now()
	out, err := r.inner.Search(ctx, params)
	r.observe("search", start, err)
	return out, err
}

func (r *Instrumented[E, F]) EntityType() string { return r.inner.EntityType() }

func (r *Instrumented[E, F]) SortableFields() []string { return r.inner.SortableFields() }
