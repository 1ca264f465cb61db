package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate es seguro para uso concurrente; se comparte entre reglas.
var validate = validator.New()

// Rule descriptor de una regla: predicado más plantilla de mensaje.
type Rule struct {
	Name    string
	Check   func(value any) bool
	Message func(field string) string
}

// NotEmpty falla con nil o string vacío. Otros tipos se consideran no vacíos.
func NotEmpty() Rule {
	return Rule{
		Name: "not_empty",
		Check: func(v any) bool {
			if v == nil {
				return false
			}
			if s, ok := v.(string); ok {
				return validate.Var(s, "required") == nil
			}
			return true
		},
		Message: func(field string) string { return field + " should not be empty" },
	}
}

// IsString exige un valor de tipo string.
func IsString() Rule {
	return Rule{
		Name: "is_string",
		Check: func(v any) bool {
			_, ok := v.(string)
			return ok
		},
		Message: func(field string) string { return field + " must be a string" },
	}
}

// MaxLength exige un string de como máximo n caracteres (runas).
func MaxLength(n int) Rule {
	tag := fmt.Sprintf("max=%d", n)
	return Rule{
		Name: "max_length",
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			return validate.Var(s, tag) == nil
		},
		Message: func(field string) string {
			return fmt.Sprintf("%s must be shorter than or equal to %d characters", field, n)
		},
	}
}

// IsBoolean exige un valor bool.
func IsBoolean() Rule {
	return Rule{
		Name: "is_boolean",
		Check: func(v any) bool {
			_, ok := v.(bool)
			return ok
		},
		Message: func(field string) string { return field + " must be a boolean value" },
	}
}
