package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// bindingErrors turns a ShouldBindJSON failure into a per-field error map,
// {"field": ["message", ...]}. Anything that is not a field-level validation
// failure (malformed JSON and the like) lands under non_field_errors.
func bindingErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := gin.H{}
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			msgs, _ := fields[name].([]string)
			fields[name] = append(msgs, fieldErrorMessage(fe))
		}
		return fields
	}
	return gin.H{"non_field_errors": []string{err.Error()}}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	default:
		return "This value is invalid."
	}
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// Postgres surfaces these as pq error 23505; with TranslateError enabled GORM
// maps any driver's variant onto ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
