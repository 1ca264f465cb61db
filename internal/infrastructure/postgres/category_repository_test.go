package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/entity/categoryfake"
)

func TestCategoryRepo_RechazaCategoriasNil(t *testing.T) {
	ctx := context.Background()
	// sin querier: el rechazo ocurre antes de tocar la base.
	repo := NewCategoryRepository(nil)

	assert.ErrorIs(t, repo.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.Update(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.BulkSave(ctx, []*entity.Category{categoryfake.ACategory().Build(), nil}), domain.ErrInvalidInput)
}
