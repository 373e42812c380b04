package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssPrefixPattern     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// validatorInstance configures and returns the shared validator used by the
// config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.StrictNewVersion(fl.Field().String())
			if err == nil {
				return true
			}
			_, err = semver.NewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color_mode", func(fl validator.FieldLevel) bool {
			return colormode.ColorMode(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("css_prefix", func(fl validator.FieldLevel) bool {
			return cssPrefixPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
