// Package validation binds JSON request bodies and turns every field
// failure into the errors map carried by 422 responses. All failures are
// collected, not only the first.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"postboard/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report field names by their json tag so the errors map matches the wire
// shape of the payload.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindJSON decodes the request body into obj and validates its binding tags.
// On failure it returns a validation error aggregating every field message.
func BindJSON(c *gin.Context, obj any) *entity.ApiError {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		collected := make(map[string][]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			collected[fe.Field()] = append(collected[fe.Field()], message(fe))
		}
		return entity.Validation(collected)
	}

	// undecodable body: not tied to any one field
	return entity.Validation(map[string][]string{
		"body": {"The request body could not be parsed."},
	})
}

// message phrases a single rule failure.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

// EmailTakenError is the uniqueness failure appended by handlers when the
// store already holds the address.
func EmailTakenError() map[string][]string {
	return map[string][]string{
		"email": {"The email has already been taken."},
	}
}
