package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/alexisbeaulieu97/themekit/internal/palette"
	"github.com/alexisbeaulieu97/themekit/internal/responsive"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// SupportedSchema is the document version range this build understands.
const SupportedSchema = "^1"

var supportedSchema = semver.MustParse("1.0.0")

// ValidateDocument checks struct tags and the document rules that need more
// than field-level validation.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return themeerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if err := validateSchemaVersion(doc.Version); err != nil {
		return err
	}

	if err := validateTokens(doc.TokenTree()); err != nil {
		return err
	}

	for _, name := range sortedComponentNames(doc.Components) {
		if err := validateComponent(name, doc.Components[name]); err != nil {
			return err
		}
	}

	return nil
}

func validateSchemaVersion(raw string) error {
	version, err := semver.NewVersion(raw)
	if err != nil {
		return themeerrors.NewValidationError("version", fmt.Sprintf("invalid version %q", raw), err)
	}

	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		msg := fmt.Sprintf("schema version %s is not supported (want %s, e.g. %s)", version, SupportedSchema, supportedSchema)
		return themeerrors.NewValidationError("version", msg, nil)
	}
	return nil
}

func validateTokens(tree tokens.Tree) error {
	if len(tree) == 0 {
		return nil
	}

	if colors, ok := style.AsObject(tree["colors"]); ok {
		issues := tokens.HueScaleIssues(colors)
		for _, hue := range sortedIssueKeys(issues) {
			msg := fmt.Sprintf("hue scale %q is incomplete: %s", hue, strings.Join(issues[hue], ", "))
			return themeerrors.NewValidationError(fieldForToken("colors", hue), msg, nil)
		}

		var colorErr error
		tokens.Walk(colors, func(path []string, value any) {
			if colorErr != nil {
				return
			}
			s, isString := value.(string)
			if !isString || !strings.HasPrefix(s, "#") {
				return
			}
			if !palette.ValidColor(s) {
				field := fieldForToken(append([]string{"colors"}, path...)...)
				colorErr = themeerrors.NewValidationError(field, fmt.Sprintf("invalid hex color %q", s), nil)
			}
		})
		if colorErr != nil {
			return colorErr
		}
	}

	if raw, present := tree["breakpoints"]; present {
		bps, ok := style.AsObject(raw)
		if !ok {
			return themeerrors.NewValidationError(fieldForToken("breakpoints"), "breakpoints must be a map of name to width", nil)
		}
		if _, err := responsive.ParseBreakpoints(bps); err != nil {
			return themeerrors.NewValidationError(fieldForToken("breakpoints"), err.Error(), err)
		}
	}

	return nil
}

func validateComponent(name string, c Component) error {
	if len(c.Parts) > 0 {
		declared := make(map[string]struct{}, len(c.Parts))
		for _, part := range c.Parts {
			declared[part] = struct{}{}
		}
		if err := checkParts(fieldForComponent(name, "baseStyle"), c.BaseStyle, declared); err != nil {
			return err
		}
		for _, key := range sortedNamedKeys(c.Sizes) {
			if err := checkParts(fieldForComponent(name, "sizes", key), c.Sizes[key], declared); err != nil {
				return err
			}
		}
		for _, key := range sortedNamedKeys(c.Variants) {
			if err := checkParts(fieldForComponent(name, "variants", key), c.Variants[key], declared); err != nil {
				return err
			}
		}
	}

	if err := checkModeSelectors(fieldForComponent(name, "baseStyle"), style.NormalizeObject(c.BaseStyle)); err != nil {
		return err
	}
	for _, key := range sortedNamedKeys(c.Sizes) {
		if err := checkModeSelectors(fieldForComponent(name, "sizes", key), style.NormalizeObject(c.Sizes[key])); err != nil {
			return err
		}
	}
	for _, key := range sortedNamedKeys(c.Variants) {
		if err := checkModeSelectors(fieldForComponent(name, "variants", key), style.NormalizeObject(c.Variants[key])); err != nil {
			return err
		}
	}

	return nil
}

func checkParts(field string, obj map[string]any, declared map[string]struct{}) error {
	for _, key := range sortedAnyKeys(obj) {
		if _, ok := declared[key]; !ok {
			return themeerrors.NewValidationError(field+"."+key, fmt.Sprintf("part %q is not declared in parts", key), nil)
		}
	}
	return nil
}

func checkModeSelectors(field string, v any) error {
	obj, ok := style.AsObject(v)
	if !ok {
		return nil
	}

	if raw, has := obj[styleconfig.ModeKey]; has {
		if len(obj) != 1 {
			return themeerrors.NewValidationError(field, fmt.Sprintf("%s must be the only key of its map", styleconfig.ModeKey), nil)
		}
		if _, valid := styleconfig.IsModeSelector(obj); !valid {
			return themeerrors.NewValidationError(field, fmt.Sprintf("%s must map light and dark values", styleconfig.ModeKey), nil)
		}
		sel, _ := style.AsObject(raw)
		if _, light := sel["light"]; !light {
			return themeerrors.NewValidationError(field, fmt.Sprintf("%s is missing a light value", styleconfig.ModeKey), nil)
		}
		if _, dark := sel["dark"]; !dark {
			return themeerrors.NewValidationError(field, fmt.Sprintf("%s is missing a dark value", styleconfig.ModeKey), nil)
		}
		return nil
	}

	for _, key := range style.Keys(obj) {
		if err := checkModeSelectors(field+"."+key, obj[key]); err != nil {
			return err
		}
	}
	return nil
}

func sortedComponentNames(m map[string]Component) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedNamedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedIssueKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
