// Package categoryfake construye categorías con datos aleatorios para tests y seeds.
package categoryfake

// Prop valor fijo o generador en función del índice de la secuencia que se está construyendo.
// El valor cero no está definido (IsSet == false).
type Prop[T any] struct {
	value T
	gen   func(index int) T
	set   bool
}

// Value prop con valor fijo.
func Value[T any](v T) Prop[T] {
	return Prop[T]{value: v, set: true}
}

// Func prop generada a partir del índice.
func Func[T any](gen func(index int) T) Prop[T] {
	return Prop[T]{gen: gen, set: true}
}

// IsSet indica si la prop tiene valor o generador.
func (p Prop[T]) IsSet() bool { return p.set }

// Resolve evalúa el generador con el índice o devuelve el valor fijo.
func (p Prop[T]) Resolve(index int) T {
	if p.gen != nil {
		return p.gen(index)
	}
	return p.value
}
