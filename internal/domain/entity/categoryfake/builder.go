package categoryfake

import (
	"errors"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// ErrPropNotSet la prop opcional no tiene valor; usar los métodos With*.
var ErrPropNotSet = errors.New("prop sin valor, usar los métodos With*")

// Builder construye una o varias categorías. Por defecto: nombre y descripción aleatorios, activa.
// ID y CreatedAt quedan a cargo de entity.NewCategory si no se fijan.
type Builder struct {
	count       int
	id          Prop[valueobject.Identity]
	name        Prop[string]
	description Prop[*string]
	isActive    Prop[bool]
	createdAt   Prop[time.Time]
}

// ACategory builder de una sola categoría.
func ACategory() *Builder {
	return newBuilder(1)
}

// TheCategories builder de n categorías (mínimo 1).
func TheCategories(n int) *Builder {
	if n < 1 {
		n = 1
	}
	return newBuilder(n)
}

func newBuilder(count int) *Builder {
	return &Builder{
		count: count,
		name:  Func(func(int) string { return gofakeit.Word() }),
		description: Func(func(int) *string {
			s := randomSentence(8)
			return &s
		}),
		isActive: Value(true),
	}
}

func (b *Builder) WithID(p Prop[valueobject.Identity]) *Builder {
	b.id = p
	return b
}

func (b *Builder) WithName(p Prop[string]) *Builder {
	b.name = p
	return b
}

func (b *Builder) WithDescription(p Prop[*string]) *Builder {
	b.description = p
	return b
}

func (b *Builder) WithCreatedAt(p Prop[time.Time]) *Builder {
	b.createdAt = p
	return b
}

// WithInvalidNameTooLong fija un nombre de 256 caracteres (o el valor dado).
func (b *Builder) WithInvalidNameTooLong(value string) *Builder {
	if value == "" {
		value = gofakeit.LetterN(256)
	}
	b.name = Value(value)
	return b
}

func (b *Builder) Activate() *Builder {
	b.isActive = Value(true)
	return b
}

func (b *Builder) Deactivate() *Builder {
	b.isActive = Value(false)
	return b
}

// Build construye la primera categoría. No valida: permite armar entidades inválidas a propósito.
func (b *Builder) Build() *entity.Category {
	return b.build(0)
}

// BuildMany construye todas las categorías.
func (b *Builder) BuildMany() []*entity.Category {
	out := make([]*entity.Category, 0, b.count)
	for i := 0; i < b.count; i++ {
		out = append(out, b.build(i))
	}
	return out
}

func (b *Builder) build(index int) *entity.Category {
	active := b.isActive.Resolve(index)
	props := entity.CategoryProps{
		Name:        b.name.Resolve(index),
		Description: b.description.Resolve(index),
		IsActive:    &active,
	}
	if b.id.IsSet() {
		props.ID = b.id.Resolve(index)
	}
	if b.createdAt.IsSet() {
		props.CreatedAt = b.createdAt.Resolve(index)
	}
	return entity.NewCategory(props)
}

// ID valor resuelto para el índice 0.
func (b *Builder) ID() (valueobject.Identity, error) {
	if !b.id.IsSet() {
		return valueobject.Identity{}, ErrPropNotSet
	}
	return b.id.Resolve(0), nil
}

func (b *Builder) Name() string { return b.name.Resolve(0) }

func (b *Builder) Description() *string { return b.description.Resolve(0) }

func (b *Builder) IsActive() bool { return b.isActive.Resolve(0) }

// CreatedAt valor resuelto para el índice 0.
func (b *Builder) CreatedAt() (time.Time, error) {
	if !b.createdAt.IsSet() {
		return time.Time{}, ErrPropNotSet
	}
	return b.createdAt.Resolve(0), nil
}

func randomSentence(words int) string {
	parts := make([]string, 0, words)
	for i := 0; i < words; i++ {
		parts = append(parts, gofakeit.Word())
	}
	return strings.Join(parts, " ") + "."
}
