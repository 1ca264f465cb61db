package validation

import (
	"bytes"
	"encoding/json"
	"errors"
)

// FieldErrors mapa campo -> mensajes que conserva el orden de inserción de los campos.
// Solo aparecen los campos con al menos una violación.
type FieldErrors struct {
	fields   []string
	messages map[string][]string
}

// Add agrega un mensaje al campo; el campo se registra en la primera violación.
func (e *FieldErrors) Add(field, message string) {
	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// Fields devuelve los campos con errores en orden de declaración.
func (e FieldErrors) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Messages devuelve los mensajes del campo en orden de evaluación.
func (e FieldErrors) Messages(field string) []string {
	return append([]string(nil), e.messages[field]...)
}

// Has indica si el campo tiene violaciones.
func (e FieldErrors) Has(field string) bool {
	_, ok := e.messages[field]
	return ok
}

// Len cantidad de campos con errores.
func (e FieldErrors) Len() int { return len(e.fields) }

// Map copia plana (sin orden) para consumidores que no lo necesitan.
func (e FieldErrors) Map() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for _, f := range e.fields {
		out[f] = e.Messages(f)
	}
	return out
}

// MarshalJSON serializa como objeto respetando el orden de los campos.
func (e FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.messages[f])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON lee un objeto campo -> mensajes conservando el orden de las claves.
func (e *FieldErrors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("field errors: se esperaba un objeto")
	}
	*e = FieldErrors{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, _ := tok.(string)
		var msgs []string
		if err := dec.Decode(&msgs); err != nil {
			return err
		}
		for _, m := range msgs {
			e.Add(field, m)
		}
	}
	_, err = dec.Token()
	return err
}
