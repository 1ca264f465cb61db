package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// SortField campo ordenable con su comparación natural (negativo, cero, positivo).
type SortField[E any] struct {
	Name    string
	Compare func(a, b E) int
}

// Config configuración de un repositorio buscable en memoria.
type Config[E any, F any] struct {
	EntityType string
	Clone      func(E) E
	// Filter predicado propio del backend; debe devolver items sin cambios si el filtro está vacío.
	Filter     func(items []E, filter F) []E
	SortFields []SortField[E]
	// DefaultSort se usa si el orden pedido falta o no está en SortFields.
	// Sin DefaultSort el resultado conserva el orden de inserción.
	DefaultSort    string
	DefaultSortDir repository.SortDirection
}

// SearchableRepository ejecuta el pipeline filtro -> orden -> paginación sobre los items en memoria.
type SearchableRepository[E entity.Entity, F any] struct {
	*Repository[E]
	cfg Config[E, F]
}

// NewSearchableRepository construye el repositorio con su configuración.
func NewSearchableRepository[E entity.Entity, F any](cfg Config[E, F]) *SearchableRepository[E, F] {
	return &SearchableRepository[E, F]{
		Repository: NewRepository[E](cfg.EntityType, cfg.Clone),
		cfg:        cfg,
	}
}

// SortableFields allowlist de campos de orden, en orden de declaración.
func (r *SearchableRepository[E, F]) SortableFields() []string {
	out := make([]string, 0, len(r.cfg.SortFields))
	for _, f := range r.cfg.SortFields {
		out = append(out, f.Name)
	}
	return out
}

// Search filtra, ordena y pagina. Total es la cantidad filtrada; páginas fuera de rango devuelven
// items vacíos sin error.
func (r *SearchableRepository[E, F]) Search(_ context.Context, params repository.SearchParams[F]) (repository.SearchResult[E], error) {
	params = params.Normalized()
	filtered := r.applyFilter(r.snapshot(), params.Filter)
	sorted := r.applySort(filtered, params.Sort, params.SortDir)
	return r.applyPaginate(sorted, params), nil
}

func (r *SearchableRepository[E, F]) applyFilter(items []E, filter F) []E {
	if r.cfg.Filter == nil {
		return items
	}
	return r.cfg.Filter(items, filter)
}

func (r *SearchableRepository[E, F]) applySort(items []E, sort string, dir repository.SortDirection) []E {
	field, ok := r.sortField(sort)
	if !ok {
		field, ok = r.sortField(r.cfg.DefaultSort)
		if !ok {
			return items
		}
		dir = r.cfg.DefaultSortDir
	}
	slices.SortStableFunc(items, func(a, b E) int {
		c := field.Compare(a, b)
		if dir == repository.SortDesc {
			return -c
		}
		return c
	})
	return items
}

func (r *SearchableRepository[E, F]) applyPaginate(items []E, params repository.SearchParams[F]) repository.SearchResult[E] {
	total := len(items)
	start := params.Offset()
	if start >= total {
		return repository.NewSearchResult(items[:0], total, params.Page, params.PerPage)
	}
	end := start + min(params.PerPage, total-start)
	return repository.NewSearchResult(items[start:end], total, params.Page, params.PerPage)
}

func (r *SearchableRepository[E, F]) sortField(name string) (SortField[E], bool) {
	if name == "" {
		return SortField[E]{}, false
	}
	for _, f := range r.cfg.SortFields {
		if f.Name == name {
			return f, true
		}
	}
	return SortField[E]{}, false
}
