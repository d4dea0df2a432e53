package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"backoffice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so handlers can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate turns validator failures into a ValidationError so they render
// like domain violations.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := errs.NewValidationError("request", nil)
	for _, fe := range ve {
		out.Add(fieldPath(fe), fieldError(fe))
	}
	return out
}

// fieldPath drops the Go type name from the namespace, leaving the JSON path.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank."
	case "uuid":
		return "This value is not a valid UUID."
	case "gt":
		return fmt.Sprintf("This value should be greater than %s.", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("This value should be greater than or equal to %s.", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("This value should be less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("This value should be one of: %s.", fe.Param())
	default:
		return fmt.Sprintf("This value failed the %s rule.", fe.Tag())
	}
}
