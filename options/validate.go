package options

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return tomlName(f)
	})
	return v
}

// Validate checks value ranges and cross-field timing constraints.
// Field names in the returned validator.ValidationErrors are TOML keys.
func Validate(opts Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
