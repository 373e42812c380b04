package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
)

// modes picks light/dark values for one evaluation and keeps the first error,
// so a style body can call pick freely and check err once.
type modes struct {
	props styleconfig.Props
	err   error
}

func (m *modes) pick(light, dark any) any {
	if m.err != nil {
		return nil
	}
	value, err := colormode.Mode(light, dark).Select(m.props.ColorMode)
	if err != nil {
		m.err = err
		return nil
	}
	return value
}

func dynamic(body func(m *modes) style.Object) styleconfig.StyleOrThunk {
	return styleconfig.Thunk(func(p styleconfig.Props) (style.Object, error) {
		m := &modes{props: p}
		obj := body(m)
		if m.err != nil {
			return nil, m.err
		}
		return obj, nil
	})
}

// tokenValue reads a token through the thunk props, falling back to the
// token path itself when the theme does not define it.
func tokenValue(p styleconfig.Props, dotted string) string {
	if p.Theme == nil {
		return dotted
	}
	value, err := p.Theme.Lookup(dotted)
	if err != nil || !style.IsScalar(value) {
		return dotted
	}
	return style.FormatValue(value)
}

func defaultComponents() map[string]styleconfig.Config {
	return map[string]styleconfig.Config{
		"Badge":  badge(),
		"Link":   link(),
		"Table":  table(),
		"Modal":  modal(),
		"Drawer": drawer(),
	}
}

func badge() styleconfig.Config {
	return styleconfig.Config{
		BaseStyle: styleconfig.Literal(style.Object{
			"display":       "inline-block",
			"whiteSpace":    "nowrap",
			"verticalAlign": "middle",
			"px":            1,
			"textTransform": "uppercase",
			"fontSize":      "xs",
			"borderRadius":  "sm",
			"fontWeight":    "bold",
		}),
		Variants: map[string]styleconfig.StyleOrThunk{
			"solid": dynamic(func(m *modes) style.Object {
				c := m.props.ColorScheme
				return style.Object{
					"bg":    m.pick(c+".500", c+".300"),
					"color": m.pick("white", "gray.800"),
				}
			}),
			"subtle": dynamic(func(m *modes) style.Object {
				c := m.props.ColorScheme
				return style.Object{
					"bg":    m.pick(c+".100", c+".800"),
					"color": m.pick(c+".800", c+".200"),
				}
			}),
			"outline": dynamic(func(m *modes) style.Object {
				c := m.props.ColorScheme
				color, _ := m.pick(c+".500", c+".200").(string)
				return style.Object{
					"color":     color,
					"boxShadow": fmt.Sprintf("inset 0 0 0px 1px %s", tokenValue(m.props, "colors."+color)),
				}
			}),
		},
		DefaultProps: styleconfig.DefaultProps{Variant: "subtle", ColorScheme: "gray"},
	}
}

func link() styleconfig.Config {
	return styleconfig.Config{
		BaseStyle: styleconfig.Literal(style.Object{
			"transition":     "all 0.15s ease-out",
			"cursor":         "pointer",
			"textDecoration": "none",
			"outline":        "none",
			"color":          "inherit",
			"_hover":         style.Object{"textDecoration": "underline"},
			"_focus":         style.Object{"boxShadow": "outline"},
		}),
	}
}

var tableParts = []string{"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption"}

func numericStyles() style.Object {
	return style.Object{"&[data-is-numeric=true]": style.Object{"textAlign": "right"}}
}

func tableFooter() style.Object {
	return style.Object{"tr": style.Object{"&:last-of-type": style.Object{"th": style.Object{"borderBottomWidth": 0}}}}
}

func tableCells(m *modes) (th, td, caption style.Object) {
	c := m.props.ColorScheme
	th = style.Merge(style.Object{
		"color":        m.pick("gray.600", "gray.400"),
		"borderBottom": "1px",
		"borderColor":  m.pick(c+".100", c+".700"),
	}, numericStyles())
	td = style.Merge(style.Object{
		"borderBottom": "1px",
		"borderColor":  m.pick(c+".100", c+".700"),
	}, numericStyles())
	caption = style.Object{"color": m.pick("gray.600", "gray.100")}
	return th, td, caption
}

func table() styleconfig.Config {
	cell := func(px, py, lineHeight, fontSize any) style.Object {
		obj := style.Object{"px": px, "py": py}
		if lineHeight != nil {
			obj["lineHeight"] = lineHeight
		}
		if fontSize != nil {
			obj["fontSize"] = fontSize
		}
		return obj
	}

	return styleconfig.Config{
		Parts: tableParts,
		BaseStyle: styleconfig.Literal(style.Object{
			"table": style.Object{
				"fontVariantNumeric": "lining-nums tabular-nums",
				"borderCollapse":     "collapse",
				"width":              "full",
			},
			"th": style.Object{
				"fontFamily":    "heading",
				"fontWeight":    "bold",
				"textTransform": "uppercase",
				"letterSpacing": "wider",
				"textAlign":     "left",
			},
			"td": style.Object{"textAlign": "left"},
			"caption": style.Object{
				"mt":         4,
				"fontFamily": "heading",
				"textAlign":  "center",
				"fontWeight": "medium",
			},
		}),
		Variants: map[string]styleconfig.StyleOrThunk{
			"simple": dynamic(func(m *modes) style.Object {
				th, td, caption := tableCells(m)
				return style.Object{"th": th, "td": td, "caption": caption, "tfoot": tableFooter()}
			}),
			"striped": dynamic(func(m *modes) style.Object {
				c := m.props.ColorScheme
				th, td, caption := tableCells(m)
				return style.Object{
					"th":      th,
					"td":      td,
					"caption": caption,
					"tbody": style.Object{
						"tr": style.Object{
							"&:nth-of-type(odd)": style.Object{
								"th, td": style.Object{
									"borderBottomWidth": "1px",
									"borderColor":       m.pick(c+".100", c+".700"),
								},
								"td": style.Object{"background": m.pick(c+".100", c+".700")},
							},
						},
					},
					"tfoot": tableFooter(),
				}
			}),
			"unstyled": styleconfig.Literal(style.Object{}),
		},
		Sizes: map[string]styleconfig.StyleOrThunk{
			"sm": styleconfig.Literal(style.Object{
				"th":      cell("4", "1", "4", "xs"),
				"td":      cell("4", "2", "4", "sm"),
				"caption": cell("4", "2", nil, "xs"),
			}),
			"md": styleconfig.Literal(style.Object{
				"th":      cell("6", "3", "4", "xs"),
				"td":      cell("6", "4", "5", nil),
				"caption": cell("6", "2", nil, "sm"),
			}),
			"lg": styleconfig.Literal(style.Object{
				"th":      cell("8", "4", "5", "sm"),
				"td":      cell("8", "5", "6", nil),
				"caption": cell("6", "2", nil, "md"),
			}),
		},
		DefaultProps: styleconfig.DefaultProps{Variant: "simple", Size: "md", ColorScheme: "gray"},
	}
}

var dialogParts = []string{"overlay", "dialogContainer", "dialog", "header", "closeButton", "body", "footer"}

func dialogSizes(sizes ...string) map[string]styleconfig.StyleOrThunk {
	out := make(map[string]styleconfig.StyleOrThunk, len(sizes)+1)
	for _, size := range sizes {
		out[size] = styleconfig.Literal(style.Object{"dialog": style.Object{"maxW": size}})
	}
	out["full"] = styleconfig.Literal(style.Object{"dialog": style.Object{"maxW": "100vw", "h": "100vh"}})
	return out
}

func dialogChrome() style.Object {
	return style.Object{
		"header":      style.Object{"px": 6, "py": 4, "fontSize": "xl", "fontWeight": "semibold"},
		"closeButton": style.Object{"position": "absolute", "top": 2, "insetEnd": 3},
		"footer":      style.Object{"px": 6, "py": 4},
	}
}

func modal() styleconfig.Config {
	return styleconfig.Config{
		Parts: dialogParts,
		BaseStyle: dynamic(func(m *modes) style.Object {
			return style.Merge(dialogChrome(), style.Object{
				"overlay": style.Object{"bg": "blackAlpha.600", "zIndex": "modal"},
				"dialogContainer": style.Object{
					"display":        "flex",
					"zIndex":         "modal",
					"justifyContent": "center",
					"alignItems":     "flex-start",
					"overflow":       "auto",
				},
				"dialog": style.Object{
					"borderRadius": "md",
					"bg":           m.pick("white", "gray.700"),
					"color":        "inherit",
					"my":           "3.75rem",
					"zIndex":       "modal",
					"boxShadow":    m.pick("lg", "dark-lg"),
				},
				"body": style.Object{"px": 6, "py": 2, "flex": 1},
			})
		}),
		Sizes:        dialogSizes("xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl"),
		DefaultProps: styleconfig.DefaultProps{Size: "md"},
	}
}

// drawer slides in from an edge. A vertical orientation (top or bottom
// placement) constrains height instead of width.
func drawer() styleconfig.Config {
	sizes := make(map[string]styleconfig.StyleOrThunk)
	for _, size := range []string{"xs", "sm", "md", "lg", "xl"} {
		size := size
		sizes[size] = styleconfig.Thunk(func(p styleconfig.Props) (style.Object, error) {
			if p.Orientation == "vertical" {
				return style.Object{"dialog": style.Object{"maxH": size}}, nil
			}
			return style.Object{"dialog": style.Object{"maxW": size}}, nil
		})
	}
	sizes["full"] = styleconfig.Literal(style.Object{"dialog": style.Object{"maxW": "100vw", "h": "100vh"}})

	return styleconfig.Config{
		Parts: dialogParts,
		BaseStyle: dynamic(func(m *modes) style.Object {
			dialog := style.Object{
				"zIndex":    "modal",
				"bg":        m.pick("white", "gray.700"),
				"color":     "inherit",
				"boxShadow": m.pick("lg", "dark-lg"),
			}
			if m.props.Orientation == "vertical" {
				dialog["maxW"] = "100vw"
			} else {
				dialog["maxH"] = "100vh"
			}
			return style.Merge(dialogChrome(), style.Object{
				"overlay":         style.Object{"bg": "blackAlpha.600", "zIndex": "overlay"},
				"dialogContainer": style.Object{"display": "flex", "zIndex": "modal", "justifyContent": "center"},
				"dialog":          dialog,
				"body":            style.Object{"px": 6, "py": 2, "flex": 1, "overflow": "auto"},
			})
		}),
		Sizes:        sizes,
		DefaultProps: styleconfig.DefaultProps{Size: "xs"},
	}
}
