package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// convertValidationError turns validator errors into theme validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName renders the field namespace using document key names,
// without the root struct name.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

func fieldForComponent(name string, parts ...string) string {
	return strings.Join(append([]string{"components", name}, parts...), ".")
}

func fieldForToken(path ...string) string {
	return strings.Join(append([]string{"tokens"}, path...), ".")
}
