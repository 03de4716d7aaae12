package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the validator singleton, initializing on first use
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// report toml key names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("toml")
			if tag == "" || tag == "-" {
				return fld.Name
			}
			return tag
		})

		// durations are validated as nanosecond counts
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(Duration); ok {
				return int64(d.Duration)
			}
			return nil
		}, Duration{})

		validate = v
	})
	return validate
}

// Validate checks the configuration against its constraints and returns an
// INVALID_CONFIG error listing every violation
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return bizerror.Wrap(err, "config validation failed").
			WithCode(bizerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	msgs := make([]string, 0, len(fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		fields = append(fields, field)
		msgs = append(msgs, describe(field, fe))
	}

	return bizerror.Newf("invalid configuration: %s", strings.Join(msgs, "; ")).
		WithCode(bizerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("fields", fields)
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s layout", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}
