package repository

import (
	"encoding/json"
	"math"
	"strings"
)

// DefaultPerPage tamaño de página cuando no se indica uno válido.
const DefaultPerPage = 15

// SortDirection dirección de orden.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection normaliza la dirección; cualquier valor distinto de "desc" es asc.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SearchInput entrada sin normalizar de una búsqueda.
type SearchInput[F any] struct {
	Page    int
	PerPage int
	Sort    string
	SortDir string
	Filter  F
}

// SearchParams descriptor de consulta normalizado. Construir con NewSearchParams.
type SearchParams[F any] struct {
	Page    int
	PerPage int
	Sort    string
	SortDir SortDirection
	Filter  F
}

// NewSearchParams normaliza la entrada: page <= 0 -> 1, perPage <= 0 -> DefaultPerPage,
// sortDir desconocido -> asc.
func NewSearchParams[F any](in SearchInput[F]) SearchParams[F] {
	page := in.Page
	if page <= 0 {
		page = 1
	}
	perPage := in.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return SearchParams[F]{
		Page:    page,
		PerPage: perPage,
		Sort:    strings.TrimSpace(in.Sort),
		SortDir: ParseSortDirection(in.SortDir),
		Filter:  in.Filter,
	}
}

// Normalized reaplica las reglas de NewSearchParams (para params armados a mano).
func (p SearchParams[F]) Normalized() SearchParams[F] {
	return NewSearchParams(SearchInput[F]{
		Page:    p.Page,
		PerPage: p.PerPage,
		Sort:    p.Sort,
		SortDir: string(p.SortDir),
		Filter:  p.Filter,
	})
}

// DefaultSearchParams página 1, DefaultPerPage, sin orden ni filtro.
func DefaultSearchParams[F any]() SearchParams[F] {
	return NewSearchParams(SearchInput[F]{})
}

// Offset desplazamiento de la ventana de paginación. Satura en math.MaxInt en lugar de desbordar.
func (p SearchParams[F]) Offset() int {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// HasSort indica si se pidió un campo de orden.
func (p SearchParams[F]) HasSort() bool { return p.Sort != "" }

// SearchResult página de resultados. Total cuenta los elementos filtrados antes de paginar.
type SearchResult[E any] struct {
	Items       []E
	Total       int
	CurrentPage int
	PerPage     int
}

// NewSearchResult copia los items para que el resultado no comparta memoria con el backend.
func NewSearchResult[E any](items []E, total, currentPage, perPage int) SearchResult[E] {
	return SearchResult[E]{
		Items:       append(make([]E, 0, len(items)), items...),
		Total:       total,
		CurrentPage: currentPage,
		PerPage:     perPage,
	}
}

// LastPage ceil(total/perPage), mínimo 1.
func (r SearchResult[E]) LastPage() int {
	if r.PerPage <= 0 || r.Total <= 0 {
		return 1
	}
	last := (r.Total + r.PerPage - 1) / r.PerPage
	if last < 1 {
		return 1
	}
	return last
}

// MarshalJSON incluye last_page derivado.
func (r SearchResult[E]) MarshalJSON() ([]byte, error) {
	items := r.Items
	if items == nil {
		items = []E{}
	}
	return json.Marshal(struct {
		Items       []E `json:"items"`
		Total       int `json:"total"`
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
		LastPage    int `json:"last_page"`
	}{items, r.Total, r.CurrentPage, r.PerPage, r.LastPage()})
}

// MapItems transforma los items conservando los metadatos de paginación.
func MapItems[E, T any](r SearchResult[E], fn func(E) T) SearchResult[T] {
	out := make([]T, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, fn(it))
	}
	return SearchResult[T]{Items: out, Total: r.Total, CurrentPage: r.CurrentPage, PerPage: r.PerPage}
}
