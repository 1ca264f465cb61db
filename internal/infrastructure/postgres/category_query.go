package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

const categoryColumns = `category_id::text, name, description, is_active, created_at`

// CategorySchema DDL de la tabla de categorías.
const CategorySchema = `
CREATE TABLE IF NOT EXISTS categories (
	category_id UUID PRIMARY KEY,
	name        VARCHAR(255) NOT NULL,
	description TEXT NULL,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// categorySortColumns allowlist campo de orden -> columna. Nunca se interpola texto del usuario.
var categorySortColumns = map[string]string{
	repository.CategorySortName:      "name",
	repository.CategorySortCreatedAt: "created_at",
}

// categorySearchQuery SQL y argumentos de una búsqueda: listado paginado y conteo.
type categorySearchQuery struct {
	listSQL   string
	listArgs  []any
	countSQL  string
	countArgs []any
}

// buildCategorySearch arma las consultas a partir de parámetros normalizados.
// Campo de orden ausente o fuera de la allowlist: created_at DESC. Desempate por category_id.
func buildCategorySearch(params repository.CategorySearchParams) categorySearchQuery {
	params = params.Normalized()

	var where string
	var args []any
	if filter := strings.TrimSpace(string(params.Filter)); filter != "" {
		where = ` WHERE name ILIKE $1`
		args = append(args, containsPattern(filter))
	}

	orderBy := "created_at DESC"
	if col, ok := categorySortColumns[params.Sort]; ok {
		dir := "ASC"
		if params.SortDir == repository.SortDesc {
			dir = "DESC"
		}
		orderBy = col + " " + dir
	}

	n := len(args)
	listSQL := fmt.Sprintf(`SELECT %s FROM categories%s ORDER BY %s, category_id LIMIT $%d OFFSET $%d`,
		categoryColumns, where, orderBy, n+1, n+2)
	listArgs := append(append([]any{}, args...), params.PerPage, params.Offset())

	return categorySearchQuery{
		listSQL:   listSQL,
		listArgs:  listArgs,
		countSQL:  `SELECT COUNT(*) FROM categories` + where,
		countArgs: args,
	}
}
