package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field names in error messages come from the json tag, humanized, so
// the public forms can show them verbatim ("Requestor first name is
// required").

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the input struct and returns one message per failed
// field, in struct declaration order. A nil result means the input is
// valid.
func Check(input interface{}) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

// Labels the mechanical humanize pass gets wrong.
var labelOverrides = map[string]string{
	"yearsService": "Years of service",
}

func messageFor(fe validator.FieldError) string {
	label, ok := labelOverrides[fe.Field()]
	if !ok {
		label = humanize(fe.Field())
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Valid email address is required"
	case "min", "gte":
		return fmt.Sprintf("%s (minimum %s) is required", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), "' '", "', '"))
	default:
		return label + " is invalid"
	}
}

// humanize turns a camelCase json field name into a sentence-case
// label: "requestorFirstName" -> "Requestor first name".
func humanize(field string) string {
	if field == "" {
		return "Field"
	}

	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
