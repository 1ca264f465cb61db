package postgres

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

func TestBuildCategorySearch(t *testing.T) {
	tests := []struct {
		name      string
		in        repository.SearchInput[repository.CategoryFilter]
		listSQL   string
		listArgs  []any
		countSQL  string
		countArgs []any
	}{
		{
			name:     "sin filtro ni orden usa created_at desc",
			in:       repository.SearchInput[repository.CategoryFilter]{},
			listSQL:  `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, category_id LIMIT $1 OFFSET $2`,
			listArgs: []any{repository.DefaultPerPage, 0},
			countSQL: `SELECT COUNT(*) FROM categories`,
		},
		{
			name:      "filtro y orden por nombre desc",
			in:        repository.SearchInput[repository.CategoryFilter]{Page: 3, PerPage: 2, Sort: "name", SortDir: "desc", Filter: "Movie"},
			listSQL:   `SELECT ` + categoryColumns + ` FROM categories WHERE name ILIKE $1 ORDER BY name DESC, category_id LIMIT $2 OFFSET $3`,
			listArgs:  []any{"%Movie%", 2, 4},
			countSQL:  `SELECT COUNT(*) FROM categories WHERE name ILIKE $1`,
			countArgs: []any{"%Movie%"},
		},
		{
			name:     "campo fuera de la allowlist se ignora",
			in:       repository.SearchInput[repository.CategoryFilter]{Sort: "name; DROP TABLE categories", SortDir: "asc"},
			listSQL:  `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, category_id LIMIT $1 OFFSET $2`,
			listArgs: []any{repository.DefaultPerPage, 0},
			countSQL: `SELECT COUNT(*) FROM categories`,
		},
		{
			name:      "comodines del usuario escapados",
			in:        repository.SearchInput[repository.CategoryFilter]{Sort: "created_at", Filter: `50%_off\`},
			listSQL:   `SELECT ` + categoryColumns + ` FROM categories WHERE name ILIKE $1 ORDER BY created_at ASC, category_id LIMIT $2 OFFSET $3`,
			listArgs:  []any{`%50\%\_off\\%`, repository.DefaultPerPage, 0},
			countSQL:  `SELECT COUNT(*) FROM categories WHERE name ILIKE $1`,
			countArgs: []any{`%50\%\_off\\%`},
		},
		{
			name:     "pagina enorme satura el offset",
			in:       repository.SearchInput[repository.CategoryFilter]{Page: math.MaxInt, PerPage: 2},
			listSQL:  `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, category_id LIMIT $1 OFFSET $2`,
			listArgs: []any{2, math.MaxInt},
			countSQL: `SELECT COUNT(*) FROM categories`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := buildCategorySearch(repository.NewSearchParams(tt.in))
			assert.Equal(t, tt.listSQL, q.listSQL)
			assert.Equal(t, tt.listArgs, q.listArgs)
			assert.Equal(t, tt.countSQL, q.countSQL)
			assert.Equal(t, tt.countArgs, q.countArgs)
		})
	}
}

func TestBuildCategorySearch_ParamsSinNormalizar(t *testing.T) {
	q := buildCategorySearch(repository.CategorySearchParams{Page: -1})
	assert.Equal(t, []any{repository.DefaultPerPage, 0}, q.listArgs)
}
