package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed rule of a struct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validator provides validation functionality
type Validator interface {
	Validate(interface{}) error
}

type validator struct {
	v        *playground.Validate
	messages map[string]string
}

var defaultMessages = map[string]string{
	"required":    "Field is required",
	"required_if": "Field is required",
	"min":         "At least one entry is required",
}

// New returns a validator that reports fields by their JSON names.
func New() Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONTagName)
	return &validator{v: v, messages: defaultMessages}
}

// JSONTagName names a struct field after its json tag.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func (v *validator) Validate(obj interface{}) error {
	err := v.v.Struct(obj)
	if err == nil {
		return nil
	}
	var errs playground.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &ValidationError{}
	for _, e := range errs {
		msg := v.messages[e.Tag()]
		if msg == "" {
			msg = e.Error()
		}
		out.Fields = append(out.Fields, FieldError{Field: e.Field(), Message: msg})
	}
	return out
}
