package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"github.com/jwalitptl/woundcare-api/pkg/httputil"
	"github.com/jwalitptl/woundcare-api/pkg/validator"
)

// ValidationConfig represents validation middleware configuration
type ValidationConfig struct {
	CustomValidators    map[string]playground.Func
	CustomErrorMessages map[string]string
}

func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		CustomErrorMessages: map[string]string{
			"required": "Field is required",
			"min":      "Value is too small",
			"max":      "Value is too large",
			"oneof":    "Value is not allowed",
		},
	}
}

// Validation names binding errors after JSON fields and turns request-body
// validation failures recorded by handlers into a 400 with per-field messages.
func Validation(config ValidationConfig) gin.HandlerFunc {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		for tag, fn := range config.CustomValidators {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}
		v.RegisterTagNameFunc(validator.JSONTagName)
	}

	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		var fields []validator.FieldError
		for _, ginErr := range c.Errors {
			var errs playground.ValidationErrors
			if !errors.As(ginErr.Err, &errs) {
				continue
			}
			for _, e := range errs {
				msg := config.CustomErrorMessages[e.Tag()]
				if msg == "" {
					msg = e.Error()
				}
				fields = append(fields, validator.FieldError{Field: e.Field(), Message: msg})
			}
		}

		if len(fields) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, httputil.NewErrorResponse("invalid request body", fields))
		}
	}
}
