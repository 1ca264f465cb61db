package memory_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/entity/categoryfake"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/infrastructure/memory"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func names(items []*entity.Category) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.Name())
	}
	return out
}

// seed guarda categorías con los nombres dados; created_at crece con el índice.
func seed(t *testing.T, repo *memory.CategoryRepository, ns ...string) []*entity.Category {
	t.Helper()
	cats := categoryfake.TheCategories(len(ns)).
		WithName(categoryfake.Func(func(i int) string { return ns[i] })).
		WithCreatedAt(categoryfake.Func(func(i int) time.Time { return baseTime.Add(time.Duration(i) * time.Second) })).
		BuildMany()
	require.NoError(t, repo.BulkSave(context.Background(), cats))
	return cats
}

func search(t *testing.T, repo repository.CategoryRepository, in repository.SearchInput[repository.CategoryFilter]) repository.CategorySearchResult {
	t.Helper()
	out, err := repo.Search(context.Background(), repository.NewSearchParams(in))
	require.NoError(t, err)
	return out
}

func TestCategorySearch_OrdenPorNombreYPaginacion(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Page: 1, PerPage: 2, Sort: "name", SortDir: "asc"})

	assert.Equal(t, []string{"a", "b"}, names(out.Items))
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 2, out.PerPage)
	assert.Equal(t, 2, out.LastPage())
}

func TestCategorySearch_PaginaFueraDeRango(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Page: 5, PerPage: 2, Sort: "name"})

	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 5, out.CurrentPage)
	assert.Equal(t, 2, out.LastPage())
}

func TestCategorySearch_PaginaEnormeNoDesborda(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c")

	// Caso 1: page al máximo
	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Page: math.MaxInt, PerPage: 2})
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, math.MaxInt, out.CurrentPage)

	// Caso 2: per_page al máximo en la página 2
	out = search(t, repo, repository.SearchInput[repository.CategoryFilter]{Page: 2, PerPage: math.MaxInt})
	assert.Empty(t, out.Items)
	assert.Equal(t, 3, out.Total)

	// Caso 3: per_page al máximo en la primera página trae todo
	out = search(t, repo, repository.SearchInput[repository.CategoryFilter]{Page: 1, PerPage: math.MaxInt, Sort: "name"})
	assert.Equal(t, []string{"a", "b", "c"}, names(out.Items))
}

func TestCategorySearch_OrdenDesc(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Sort: "name", SortDir: "desc"})
	assert.Equal(t, []string{"c", "b", "a"}, names(out.Items))
}

func TestCategorySearch_SinOrdenUsaCreatedAtDesc(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "first", "second", "third")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{})
	assert.Equal(t, []string{"third", "second", "first"}, names(out.Items))
	assert.Equal(t, repository.DefaultPerPage, out.PerPage)
}

func TestCategorySearch_CampoNoPermitidoUsaOrdenPorDefecto(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Sort: "is_active", SortDir: "asc"})
	assert.Equal(t, []string{"c", "a", "b"}, names(out.Items), "created_at desc ignora sortDir pedido")
}

func TestCategorySearch_FiltroSinDistinguirMayusculas(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "test", "a", "TEST", "TeSt", "ß-Straße")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Filter: "TEST", PerPage: 2, Sort: "name"})
	assert.Equal(t, []string{"TEST", "TeSt"}, names(out.Items))
	assert.Equal(t, 3, out.Total, "total cuenta los filtrados antes de paginar")
	assert.Equal(t, 2, out.LastPage())

	out = search(t, repo, repository.SearchInput[repository.CategoryFilter]{Filter: "strasse"})
	assert.Equal(t, []string{"ß-Straße"}, names(out.Items))
}

func TestCategorySearch_FiltroVacioNoFiltra(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "a", "b")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Filter: "  "})
	assert.Equal(t, 2, out.Total)
}

func TestCategorySearch_FiltroIgnoraEspaciosExternos(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "Movie", "Film", "Documentary")

	out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Filter: "  movie "})
	assert.Equal(t, []string{"Movie"}, names(out.Items))
	assert.Equal(t, 1, out.Total)
}

func TestCategorySearch_OrdenEstableConEmpates(t *testing.T) {
	repo := memory.NewCategoryRepository()
	// mismo nombre: se conserva el orden relativo del conjunto filtrado (inserción).
	cats := categoryfake.TheCategories(3).
		WithName(categoryfake.Value("same")).
		WithCreatedAt(categoryfake.Value(baseTime)).
		BuildMany()
	require.NoError(t, repo.BulkSave(context.Background(), cats))

	for _, dir := range []string{"asc", "desc"} {
		out := search(t, repo, repository.SearchInput[repository.CategoryFilter]{Sort: "name", SortDir: dir})
		require.Len(t, out.Items, 3)
		for i := range cats {
			assert.True(t, cats[i].Equals(out.Items[i]), "dir=%s index=%d", dir, i)
		}
	}
}

func TestCategorySearch_Idempotente(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "b", "a", "c", "d")
	in := repository.SearchInput[repository.CategoryFilter]{Page: 2, PerPage: 2, Sort: "name"}

	first := search(t, repo, in)
	second := search(t, repo, in)
	assert.Equal(t, first, second)
}

func TestCategorySearch_ParamsSinNormalizar(t *testing.T) {
	repo := memory.NewCategoryRepository()
	seed(t, repo, "a", "b")

	out, err := repo.Search(context.Background(), repository.CategorySearchParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, repository.DefaultPerPage, out.PerPage)
	assert.Len(t, out.Items, 2)
}

func TestCategoryRepository_SortableFields(t *testing.T) {
	repo := memory.NewCategoryRepository()
	assert.Equal(t, repository.CategorySortableFields, repo.SortableFields())
	assert.Equal(t, entity.CategoryEntityType, repo.EntityType())
}

func TestSerialized_AccesoConcurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.Serialize[*entity.Category, repository.CategoryFilter](memory.NewCategoryRepository())
	var _ repository.CategoryRepository = repo

	cats := categoryfake.TheCategories(20).BuildMany()
	var wg sync.WaitGroup
	for _, c := range cats {
		wg.Add(1)
		go func(c *entity.Category) {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, c))
			_, err := repo.Search(ctx, repository.DefaultSearchParams[repository.CategoryFilter]())
			assert.NoError(t, err)
			assert.NoError(t, repo.Delete(ctx, c.ID()))
		}(c)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, entity.CategoryEntityType, repo.EntityType())
}
