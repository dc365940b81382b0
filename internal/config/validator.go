package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	pageIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("page_id", func(fl validator.FieldLevel) bool {
			return pageIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks field values. Whether start_page names a real page
// is decided by the caller, which knows the page set.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return vitrineerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into vitrine
// validation errors named by their YAML path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return vitrineerrors.NewValidationError(field, msg, err)
	}

	return vitrineerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace.
func yamlFieldName(fe validator.FieldError) string {
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return field
}
