package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared across requests; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// FieldError is a single violated rule, tagged with the offending field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationErrors is the 400 response body for validation failures:
// every violated rule at once, not just the first.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Validate checks req (after the caller has normalized it) and returns all
// violations. A nil slice means the request is valid.
func Validate(req any) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Msg: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out = append(out, FieldError{Field: field, Msg: messageFor(field, fe)})
	}
	return out
}

// messageFor renders a human-readable message per violated tag.
func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", capitalize(field))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", capitalize(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", capitalize(field), fe.Param())
	case "email":
		return "Invalid email"
	default:
		return fmt.Sprintf("%s is not valid", capitalize(field))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
