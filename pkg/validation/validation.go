package validation

import (
	"strings"
	"unicode"

	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Struct validates s and converts the first violation into the structured
// (field, rule) validation error the API exposes. Validation runs before
// authorization and persistence, so a failing request mutates nothing.
func Struct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperror.Validation("body", "invalid", err.Error())
	}

	e := validationErrors[0]
	field := snakeCase(e.Field())
	msg := "Field '" + field + "' failed validation rule '" + e.Tag() + "'"
	if e.Param() != "" {
		msg += " (" + e.Param() + ")"
	}
	return apperror.Validation(field, e.Tag(), msg)
}

// snakeCase converts a Go struct field name to its JSON form, e.g.
// "JobType" -> "job_type".
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
