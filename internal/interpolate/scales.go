package interpolate

// shorthands expand abbreviated style props into the CSS properties they set.
var shorthands = map[string][]string{
	"p":        {"padding"},
	"px":       {"paddingInlineStart", "paddingInlineEnd"},
	"py":       {"paddingTop", "paddingBottom"},
	"pt":       {"paddingTop"},
	"pb":       {"paddingBottom"},
	"pl":       {"paddingLeft"},
	"pr":       {"paddingRight"},
	"paddingX": {"paddingInlineStart", "paddingInlineEnd"},
	"paddingY": {"paddingTop", "paddingBottom"},
	"m":        {"margin"},
	"mx":       {"marginInlineStart", "marginInlineEnd"},
	"my":       {"marginTop", "marginBottom"},
	"mt":       {"marginTop"},
	"mb":       {"marginBottom"},
	"ml":       {"marginLeft"},
	"mr":       {"marginRight"},
	"marginX":  {"marginInlineStart", "marginInlineEnd"},
	"marginY":  {"marginTop", "marginBottom"},
	"bg":       {"background"},
	"bgColor":  {"backgroundColor"},
	"w":        {"width"},
	"h":        {"height"},
	"minW":     {"minWidth"},
	"maxW":     {"maxWidth"},
	"minH":     {"minHeight"},
	"maxH":     {"maxHeight"},
	"boxSize":  {"width", "height"},
	"rounded":  {"borderRadius"},
	"shadow":   {"boxShadow"},
}

// scales maps CSS properties to the token group their values are drawn from.
var scales = map[string]string{
	"color":             "colors",
	"background":        "colors",
	"backgroundColor":   "colors",
	"borderColor":       "colors",
	"borderTopColor":    "colors",
	"borderBottomColor": "colors",
	"borderLeftColor":   "colors",
	"borderRightColor":  "colors",
	"outlineColor":      "colors",
	"fill":              "colors",
	"stroke":            "colors",

	"padding":            "space",
	"paddingTop":         "space",
	"paddingBottom":      "space",
	"paddingLeft":        "space",
	"paddingRight":       "space",
	"paddingInlineStart": "space",
	"paddingInlineEnd":   "space",
	"margin":             "space",
	"marginTop":          "space",
	"marginBottom":       "space",
	"marginLeft":         "space",
	"marginRight":        "space",
	"marginInlineStart":  "space",
	"marginInlineEnd":    "space",
	"gap":                "space",
	"rowGap":             "space",
	"columnGap":          "space",
	"top":                "space",
	"right":              "space",
	"bottom":             "space",
	"left":               "space",
	"inset":              "space",

	"width":     "sizes",
	"height":    "sizes",
	"minWidth":  "sizes",
	"maxWidth":  "sizes",
	"minHeight": "sizes",
	"maxHeight": "sizes",
	"flexBasis": "sizes",

	"fontSize":      "fontSizes",
	"fontWeight":    "fontWeights",
	"lineHeight":    "lineHeights",
	"letterSpacing": "letterSpacings",
	"fontFamily":    "fonts",

	"borderRadius":            "radii",
	"borderTopLeftRadius":     "radii",
	"borderTopRightRadius":    "radii",
	"borderBottomLeftRadius":  "radii",
	"borderBottomRightRadius": "radii",

	"border":       "borders",
	"borderTop":    "borders",
	"borderBottom": "borders",
	"borderLeft":   "borders",
	"borderRight":  "borders",

	"boxShadow":  "shadows",
	"textShadow": "shadows",
	"zIndex":     "zIndices",
}

// Scale returns the token group that backs prop.
func Scale(prop string) (string, bool) {
	scale, ok := scales[prop]
	return scale, ok
}

// Properties returns the CSS properties that prop sets. Unknown props map to
// themselves.
func Properties(prop string) []string {
	if expanded, ok := shorthands[prop]; ok {
		return expanded
	}
	return []string{prop}
}

// IsStyleProp reports whether prop is a known shorthand or scaled property.
func IsStyleProp(prop string) bool {
	if _, ok := shorthands[prop]; ok {
		return true
	}
	_, ok := scales[prop]
	return ok
}
