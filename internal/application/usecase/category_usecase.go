package usecase

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/validation"
)

// CategoryUseCase casos de uso CRUD y búsqueda de categorías.
//
// Errores: id mal formado -> domain.ErrInvalidIdentity; inexistente -> *domain.NotFoundError;
// entrada inválida -> *domain.EntityValidationError con todos los campos.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida la entrada y crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := entity.ValidateCategoryInput(validation.Values{
		"name":        in.Name,
		"description": in.Description,
		"is_active":   in.IsActive,
	}); err != nil {
		return nil, err
	}
	category, err := entity.CreateCategory(entity.CategoryCreateProps{
		Name:        in.Name.(string),
		Description: optionalString(in.Description),
		IsActive:    optionalBool(in.IsActive),
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Search filtra, ordena y pagina categorías.
func (uc *CategoryUseCase) Search(ctx context.Context, in dto.SearchRequest) (*dto.CategoryListResponse, error) {
	params := repository.NewSearchParams(repository.SearchInput[repository.CategoryFilter]{
		Page:    in.Page,
		PerPage: in.PerPage,
		Sort:    in.Sort,
		SortDir: in.SortDir,
		Filter:  repository.CategoryFilter(in.Filter),
	})
	result, err := uc.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(result.Items))
	for _, c := range result.Items {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page: dto.PageResponse{
			CurrentPage: result.CurrentPage,
			PerPage:     result.PerPage,
			LastPage:    result.LastPage(),
			Total:       result.Total,
		},
	}, nil
}

// Update cambia nombre, descripción (si viene la clave) y estado (si viene is_active).
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := entity.ValidateCategoryInput(validation.Values{
		"name":        in.Name,
		"description": in.Description,
		"is_active":   in.IsActive,
	}); err != nil {
		return nil, err
	}
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.ChangeName(in.Name.(string)); err != nil {
		return nil, err
	}
	if in.HasDescription {
		if err := category.ChangeDescription(optionalString(in.Description)); err != nil {
			return nil, err
		}
	}
	if active := optionalBool(in.IsActive); active != nil {
		if err := setActive(category, *active); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Activate marca la categoría como activa.
func (uc *CategoryUseCase) Activate(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	return uc.changeActive(ctx, id, true)
}

// Deactivate marca la categoría como inactiva.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	return uc.changeActive(ctx, id, false)
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	categoryID, err := entity.ParseCategoryID(id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, categoryID)
}

func (uc *CategoryUseCase) changeActive(ctx context.Context, id string, active bool) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := setActive(category, active); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (uc *CategoryUseCase) find(ctx context.Context, id string) (*entity.Category, error) {
	categoryID, err := entity.ParseCategoryID(id)
	if err != nil {
		return nil, err
	}
	category, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError(categoryID.Token(), uc.repo.EntityType())
	}
	return category, nil
}

func setActive(c *entity.Category, active bool) error {
	if active {
		return c.Activate()
	}
	return c.Deactivate()
}

// optionalString y optionalBool asumen entrada ya validada (nil o del tipo correcto).
func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func optionalBool(v any) *bool {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID().Token(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
