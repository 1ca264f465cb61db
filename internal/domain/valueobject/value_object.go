// Package valueobject define los objetos de valor del dominio: datos inmutables con igualdad estructural.
package valueobject

import "reflect"

// Kind discriminante explícito de cada variante de objeto de valor.
type Kind string

// KindIdentity identidad genérica sin tipo de entidad asociado.
const KindIdentity Kind = "identity"

// ValueObject todo objeto de valor declara su variante.
type ValueObject interface {
	Kind() Kind
}

// Equal compara dos objetos de valor: misma variante y todos los campos iguales.
// Comparar contra nil siempre es false.
func Equal(a, b ValueObject) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v ValueObject) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
