package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

var errNilCategory = fmt.Errorf("category nil: %w", domain.ErrInvalidInput)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// EnsureSchema crea la tabla de categorías si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, CategorySchema); err != nil {
		return fmt.Errorf("create categories table: %w", err)
	}
	return nil
}

const insertCategorySQL = `
	INSERT INTO categories (category_id, name, description, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5)`

func insertArgs(c *entity.Category) []any {
	r := c.Record()
	return []any{r.ID, r.Name, r.Description, r.IsActive, r.CreatedAt}
}

// Save persiste una nueva categoría.
func (r *CategoryRepo) Save(ctx context.Context, c *entity.Category) error {
	if c == nil {
		return errNilCategory
	}
	if _, err := r.q.Exec(ctx, insertCategorySQL, insertArgs(c)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// BulkSave inserta todas las categorías en un único batch (transacción implícita: todas o ninguna).
func (r *CategoryRepo) BulkSave(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	if slices.Contains(categories, nil) {
		return errNilCategory
	}
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(insertCategorySQL, insertArgs(c)...)
	}
	br := r.q.SendBatch(ctx, batch)
	for range categories {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("bulk insert categories: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("bulk insert categories: %w", err)
	}
	return nil
}

// Update reemplaza la categoría con la misma identidad.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	if c == nil {
		return errNilCategory
	}
	rec := c.Record()
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, is_active = $4, created_at = $5 WHERE category_id = $1`,
		rec.ID, rec.Name, rec.Description, rec.IsActive, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFoundError(rec.ID, entity.CategoryEntityType)
	}
	return nil
}

// Delete elimina una categoría por identidad.
func (r *CategoryRepo) Delete(ctx context.Context, id valueobject.Identity) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id.Token())
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFoundError(id.Token(), entity.CategoryEntityType)
	}
	return nil
}

// FindByID obtiene una categoría; nil, nil si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id valueobject.Identity) (*entity.Category, error) {
	row := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE category_id = $1`, id.Token())
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// FindAll lista todas las categorías, más recientes primero.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at DESC, category_id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collectCategories(rows)
}

func (r *CategoryRepo) EntityType() string { return entity.CategoryEntityType }

func (r *CategoryRepo) SortableFields() []string {
	return append([]string(nil), repository.CategorySortableFields...)
}

// Search filtra por nombre (ILIKE), ordena según la allowlist y pagina con LIMIT/OFFSET.
func (r *CategoryRepo) Search(ctx context.Context, params repository.CategorySearchParams) (repository.CategorySearchResult, error) {
	params = params.Normalized()
	q := buildCategorySearch(params)

	var total int
	if err := r.q.QueryRow(ctx, q.countSQL, q.countArgs...).Scan(&total); err != nil {
		return repository.CategorySearchResult{}, fmt.Errorf("count categories: %w", err)
	}

	rows, err := r.q.Query(ctx, q.listSQL, q.listArgs...)
	if err != nil {
		return repository.CategorySearchResult{}, fmt.Errorf("search categories: %w", err)
	}
	items, err := collectCategories(rows)
	if err != nil {
		return repository.CategorySearchResult{}, err
	}
	return repository.NewSearchResult(items, total, params.Page, params.PerPage), nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var rec entity.CategoryRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.IsActive, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return entity.RestoreCategory(rec)
}

func collectCategories(rows pgx.Rows) ([]*entity.Category, error) {
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return list, nil
}
