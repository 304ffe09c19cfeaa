package validator

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// converts failures into validation errors with field level details.
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ierr.WithError(err).
				WithHint("Invalid request").
				Mark(ierr.ErrValidation)
		}

		details := make(map[string]interface{}, len(validationErrors))
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			field := strings.ToLower(fieldErr.Field())
			details[field] = fieldErr.Tag()
			fields = append(fields, field)
		}

		return ierr.NewErrorf("invalid value for fields: %s", strings.Join(fields, ", ")).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
