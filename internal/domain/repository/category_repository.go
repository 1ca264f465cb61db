package repository

import "github.com/jhoicas/catalog-api/internal/domain/entity"

// CategoryFilter texto a buscar en el nombre; vacío = sin filtro.
type CategoryFilter string

// Campos de orden permitidos para Category.
const (
	CategorySortName      = "name"
	CategorySortCreatedAt = "created_at"
)

// CategorySortableFields allowlist de campos de orden.
var CategorySortableFields = []string{CategorySortName, CategorySortCreatedAt}

type (
	CategorySearchParams = SearchParams[CategoryFilter]
	CategorySearchResult = SearchResult[*entity.Category]
)

// CategoryRepository puerto de persistencia para Category (DIP).
// Sin orden explícito (o con uno fuera de la allowlist) los backends ordenan por created_at desc.
type CategoryRepository interface {
	SearchableRepository[*entity.Category, CategoryFilter]
}
