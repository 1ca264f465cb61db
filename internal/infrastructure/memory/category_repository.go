package memory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementación en memoria del puerto CategoryRepository.
// Filtro: subcadena del nombre sin distinguir mayúsculas. Orden por defecto: created_at desc.
type CategoryRepository struct {
	*SearchableRepository[*entity.Category, repository.CategoryFilter]
}

// NewCategoryRepository construye el repositorio de categorías en memoria.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		SearchableRepository: NewSearchableRepository(Config[*entity.Category, repository.CategoryFilter]{
			EntityType: entity.CategoryEntityType,
			Clone:      (*entity.Category).Clone,
			Filter:     filterCategoriesByName,
			SortFields: []SortField[*entity.Category]{
				{Name: repository.CategorySortName, Compare: func(a, b *entity.Category) int {
					return strings.Compare(a.Name(), b.Name())
				}},
				{Name: repository.CategorySortCreatedAt, Compare: func(a, b *entity.Category) int {
					return a.CreatedAt().Compare(b.CreatedAt())
				}},
			},
			DefaultSort:    repository.CategorySortCreatedAt,
			DefaultSortDir: repository.SortDesc,
		}),
	}
}

func filterCategoriesByName(items []*entity.Category, filter repository.CategoryFilter) []*entity.Category {
	term := strings.TrimSpace(string(filter))
	if term == "" {
		return items
	}
	// cases.Caser guarda estado: uno por búsqueda.
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]*entity.Category, 0, len(items))
	for _, c := range items {
		if strings.Contains(fold.String(c.Name()), needle) {
			out = append(out, c)
		}
	}
	return out
}
