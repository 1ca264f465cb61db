package entity

import (
	"reflect"

	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

// Entity objeto de dominio con igualdad por identidad.
type Entity interface {
	ID() valueobject.Identity
}

// Base se embebe en cada entidad: es dueña de la identidad, fijada al construir.
type Base struct {
	id valueobject.Identity
}

// NewBase construye la base con la identidad dada.
func NewBase(id valueobject.Identity) Base {
	return Base{id: id}
}

// ID identidad de la entidad.
func (b Base) ID() valueobject.Identity { return b.id }

// Equals dos entidades son iguales si y solo si sus identidades lo son.
func (b Base) Equals(other Entity) bool {
	if isNilEntity(other) {
		return false
	}
	return b.id.Equals(other.ID())
}

// SameEntity compara dos entidades por identidad; nil nunca es igual.
func SameEntity(a, b Entity) bool {
	if isNilEntity(a) || isNilEntity(b) {
		return false
	}
	return a.ID().Equals(b.ID())
}

func isNilEntity(e Entity) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
