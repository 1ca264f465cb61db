// Package validation evalúa una tabla ordenada campo -> reglas y agrega todas las violaciones.
package validation

// Source entrega el valor de un campo por nombre. nil significa ausente.
type Source interface {
	Value(field string) any
}

// Values Source basado en un mapa (útil para entrada cruda, p. ej. JSON decodificado).
type Values map[string]any

// Value implementa Source.
func (v Values) Value(field string) any { return v[field] }

// FieldRules reglas de un campo, en orden de declaración.
type FieldRules struct {
	Name     string
	Rules    []Rule
	Optional bool // si el valor es nil no se evalúa ninguna regla
}

// Field declara las reglas obligatorias de un campo.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// OptionalField declara un campo cuyas reglas solo aplican si hay valor.
func OptionalField(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules, Optional: true}
}

// Table tabla de reglas construida una vez por tipo de entidad.
type Table struct {
	fields []FieldRules
}

// NewTable construye la tabla respetando el orden recibido.
func NewTable(fields ...FieldRules) Table {
	return Table{fields: append([]FieldRules(nil), fields...)}
}

// Fields nombres de campos declarados.
func (t Table) Fields() []string {
	out := make([]string, 0, len(t.fields))
	for _, f := range t.fields {
		out = append(out, f.Name)
	}
	return out
}

// Validate evalúa todas las reglas de todos los campos, sin cortar en el primer fallo.
func (t Table) Validate(src Source) (bool, FieldErrors) {
	var errs FieldErrors
	for _, f := range t.fields {
		v := src.Value(f.Name)
		if f.Optional && v == nil {
			continue
		}
		for _, r := range f.Rules {
			if !r.Check(v) {
				errs.Add(f.Name, r.Message(f.Name))
			}
		}
	}
	return errs.Len() == 0, errs
}
