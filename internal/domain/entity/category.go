package entity

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/validation"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// KindCategoryID variante de identidad de Category.
const KindCategoryID valueobject.Kind = "category_id"

// CategoryEntityType etiqueta usada en los mensajes de NotFoundError.
const CategoryEntityType = "Category"

// NewCategoryID genera una identidad nueva de categoría.
func NewCategoryID() valueobject.Identity {
	return valueobject.NewIdentityOf(KindCategoryID)
}

// ParseCategoryID valida el token y construye la identidad de categoría.
func ParseCategoryID(token string) (valueobject.Identity, error) {
	return valueobject.ParseIdentityOf(KindCategoryID, token)
}

// categoryRules tabla de reglas de Category, en orden de declaración.
var categoryRules = validation.NewTable(
	validation.Field("name", validation.NotEmpty(), validation.IsString(), validation.MaxLength(255)),
	validation.OptionalField("description", validation.IsString()),
	validation.OptionalField("is_active", validation.IsBoolean()),
)

// CategoryRules devuelve la tabla de reglas de Category.
func CategoryRules() validation.Table { return categoryRules }

// ValidateCategoryInput valida entrada cruda (p. ej. JSON decodificado) con las reglas de Category.
func ValidateCategoryInput(src validation.Source) error {
	if ok, errs := categoryRules.Validate(src); !ok {
		return domain.NewEntityValidationError(errs)
	}
	return nil
}

// Category categoría de productos del catálogo.
type Category struct {
	Base
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

// CategoryProps datos para construir una Category sin validar (reconstrucción, builders de test).
type CategoryProps struct {
	ID          valueobject.Identity // cero: se genera una nueva
	Name        string
	Description *string
	IsActive    *bool     // nil: activa
	CreatedAt   time.Time // cero: ahora
}

// CategoryCreateProps entrada del factory CreateCategory.
type CategoryCreateProps struct {
	Name        string
	Description *string
	IsActive    *bool
}

// CategoryRecord forma persistida de una Category.
type CategoryRecord struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// NewCategory construye una Category aplicando valores por defecto. No valida.
func NewCategory(p CategoryProps) *Category {
	id := p.ID
	if id.IsZero() {
		id = NewCategoryID()
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Category{
		Base:        NewBase(id),
		name:        p.Name,
		description: copyString(p.Description),
		isActive:    active,
		createdAt:   createdAt,
	}
}

// CreateCategory factory: construye y valida. Si la validación falla no devuelve la entidad.
func CreateCategory(p CategoryCreateProps) (*Category, error) {
	c := NewCategory(CategoryProps{Name: p.Name, Description: p.Description, IsActive: p.IsActive})
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory reconstruye una Category desde su forma persistida.
func RestoreCategory(r CategoryRecord) (*Category, error) {
	id, err := ParseCategoryID(r.ID)
	if err != nil {
		return nil, err
	}
	active := r.IsActive
	return NewCategory(CategoryProps{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    &active,
		CreatedAt:   r.CreatedAt,
	}), nil
}

func (c *Category) Name() string { return c.name }

// Description devuelve la descripción o nil si no tiene.
func (c *Category) Description() *string { return copyString(c.description) }

func (c *Category) IsActive() bool { return c.isActive }

func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Validate aplica la tabla de reglas al estado actual.
func (c *Category) Validate() error {
	return ValidateCategoryInput(categoryFields{c})
}

// ChangeName cambia el nombre; si el resultado es inválido la categoría no cambia.
func (c *Category) ChangeName(name string) error {
	next := *c
	next.name = name
	return c.commit(next)
}

// ChangeDescription cambia la descripción (nil la elimina).
func (c *Category) ChangeDescription(description *string) error {
	next := *c
	next.description = copyString(description)
	return c.commit(next)
}

func (c *Category) Activate() error {
	next := *c
	next.isActive = true
	return c.commit(next)
}

func (c *Category) Deactivate() error {
	next := *c
	next.isActive = false
	return c.commit(next)
}

func (c *Category) commit(next Category) error {
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Clone copia independiente con la misma identidad.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	cp := *c
	cp.description = copyString(c.description)
	return &cp
}

// Record forma persistida de la categoría.
func (c *Category) Record() CategoryRecord {
	return CategoryRecord{
		ID:          c.ID().Token(),
		Name:        c.name,
		Description: copyString(c.description),
		IsActive:    c.isActive,
		CreatedAt:   c.createdAt,
	}
}

// MarshalJSON serializa la identidad como token más los campos de negocio.
func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CategoryID  string    `json:"category_id"`
		Name        string    `json:"name"`
		Description *string   `json:"description"`
		IsActive    bool      `json:"is_active"`
		CreatedAt   time.Time `json:"created_at"`
	}{
		CategoryID:  c.ID().Token(),
		Name:        c.name,
		Description: c.description,
		IsActive:    c.isActive,
		CreatedAt:   c.createdAt,
	})
}

// categoryFields expone los campos de Category como validation.Source.
type categoryFields struct{ c *Category }

func (f categoryFields) Value(field string) any {
	switch field {
	case "name":
		return f.c.name
	case "description":
		if f.c.description == nil {
			return nil
		}
		return *f.c.description
	case "is_active":
		return f.c.isActive
	}
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
