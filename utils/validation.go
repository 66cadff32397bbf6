package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMessages turns a binding failure into field-level message lists,
// keyed by the wire name of each field.
func ValidationMessages(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		out[field] = append(out[field], messageFor(field, fe))
	}
	return out
}

func RespondValidationError(c *gin.Context, errs map[string][]string) {
	Respond(c, http.StatusUnprocessableEntity, "The given data was invalid.", errs)
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	// UserID -> user_i_d, collapse the initialism
	return strings.ReplaceAll(b.String(), "i_d", "id")
}
