package tokens

import (
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// HueShades lists the ten keys of a ColorHueScale in ascending order.
var HueShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

var hueShadeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(HueShades))
	for _, shade := range HueShades {
		set[shade] = struct{}{}
	}
	return set
}()

// IsShade reports whether key is one of the ten hue shade keys.
func IsShade(key string) bool {
	_, ok := hueShadeSet[key]
	return ok
}

// LooksLikeHueScale reports whether every key of tree is numeric, which marks
// the group as intended to be a ColorHueScale.
func LooksLikeHueScale(tree Tree) bool {
	if len(tree) == 0 {
		return false
	}
	for key, value := range tree {
		if _, err := strconv.Atoi(key); err != nil {
			return false
		}
		if _, nested := style.AsObject(value); nested {
			return false
		}
	}
	return true
}

// IsHueScale reports whether tree has exactly the ten shade keys with scalar values.
func IsHueScale(tree Tree) bool {
	return len(tree) == len(HueShades) && len(MissingShades(tree)) == 0 && len(ExtraShades(tree)) == 0
}

// MissingShades lists required shade keys absent from tree.
func MissingShades(tree Tree) []string {
	var missing []string
	for _, shade := range HueShades {
		value, ok := tree[shade]
		if !ok || value == nil || !style.IsScalar(value) {
			missing = append(missing, shade)
		}
	}
	return missing
}

// ExtraShades lists keys of tree that are not shade keys.
func ExtraShades(tree Tree) []string {
	var extra []string
	for key := range tree {
		if !IsShade(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

// HueScaleIssues inspects a colors group and returns, for every entry that
// looks like a hue scale, the shades it is missing or has in excess.
func HueScaleIssues(colors Tree) map[string][]string {
	issues := make(map[string][]string)
	for name, value := range colors {
		group, ok := style.AsObject(value)
		if !ok || !LooksLikeHueScale(group) {
			continue
		}
		problems := MissingShades(group)
		for _, extra := range ExtraShades(group) {
			problems = append(problems, "unexpected "+extra)
		}
		if len(problems) > 0 {
			issues[name] = problems
		}
	}
	return issues
}
