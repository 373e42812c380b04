package theme

import "github.com/alexisbeaulieu97/themekit/internal/tokens"

func hue(shades ...string) tokens.Tree {
	out := make(tokens.Tree, len(shades))
	for i, shade := range shades {
		if i < len(tokens.HueShades) {
			out[tokens.HueShades[i]] = shade
		}
	}
	return out
}

func alpha(rgb string) tokens.Tree {
	opacities := []string{"0.04", "0.06", "0.08", "0.16", "0.24", "0.36", "0.48", "0.64", "0.80", "0.92"}
	shades := make([]string, len(opacities))
	for i, o := range opacities {
		shades[i] = "rgba(" + rgb + ", " + o + ")"
	}
	return hue(shades...)
}

func colors() tokens.Tree {
	return tokens.Tree{
		"transparent": "transparent",
		"current":     "currentColor",
		"black":       "#000000",
		"white":       "#FFFFFF",
		"whiteAlpha":  alpha("255, 255, 255"),
		"blackAlpha":  alpha("0, 0, 0"),
		"gray":        hue("#F7FAFC", "#EDF2F7", "#E2E8F0", "#CBD5E0", "#A0AEC0", "#718096", "#4A5568", "#2D3748", "#1A202C", "#171923"),
		"red":         hue("#FFF5F5", "#FED7D7", "#FEB2B2", "#FC8181", "#F56565", "#E53E3E", "#C53030", "#9B2C2C", "#822727", "#63171B"),
		"orange":      hue("#FFFAF0", "#FEEBC8", "#FBD38D", "#F6AD55", "#ED8936", "#DD6B20", "#C05621", "#9C4221", "#7B341E", "#652B19"),
		"green":       hue("#F0FFF4", "#C6F6D5", "#9AE6B4", "#68D391", "#48BB78", "#38A169", "#2F855A", "#276749", "#22543D", "#1C4532"),
		"teal":        hue("#E6FFFA", "#B2F5EA", "#81E6D9", "#4FD1C5", "#38B2AC", "#319795", "#2C7A7B", "#285E61", "#234E52", "#1D4044"),
		"blue":        hue("#ebf8ff", "#bee3f8", "#90cdf4", "#63b3ed", "#4299e1", "#3182ce", "#2b6cb0", "#2c5282", "#2a4365", "#1A365D"),
		"purple":      hue("#FAF5FF", "#E9D8FD", "#D6BCFA", "#B794F4", "#9F7AEA", "#805AD5", "#6B46C1", "#553C9A", "#44337A", "#322659"),
	}
}

func space() tokens.Tree {
	return tokens.Tree{
		"px": "1px", "0.5": "0.125rem", "1": "0.25rem", "1.5": "0.375rem", "2": "0.5rem",
		"2.5": "0.625rem", "3": "0.75rem", "3.5": "0.875rem", "4": "1rem", "5": "1.25rem",
		"6": "1.5rem", "7": "1.75rem", "8": "2rem", "9": "2.25rem", "10": "2.5rem",
		"12": "3rem", "14": "3.5rem", "16": "4rem", "20": "5rem", "24": "6rem",
		"28": "7rem", "32": "8rem", "36": "9rem", "40": "10rem", "44": "11rem",
		"48": "12rem", "52": "13rem", "56": "14rem", "60": "15rem", "64": "16rem",
		"72": "18rem", "80": "20rem", "96": "24rem",
	}
}

func sizes() tokens.Tree {
	named := tokens.Tree{
		"max": "max-content", "min": "min-content", "full": "100%",
		"3xs": "14rem", "2xs": "16rem", "xs": "20rem", "sm": "24rem", "md": "28rem",
		"lg": "32rem", "xl": "36rem", "2xl": "42rem", "3xl": "48rem", "4xl": "56rem",
		"5xl": "64rem", "6xl": "72rem", "7xl": "80rem", "8xl": "90rem",
		"container": tokens.Tree{"sm": "640px", "md": "768px", "lg": "1024px", "xl": "1280px"},
	}
	for k, v := range space() {
		named[k] = v
	}
	return named
}

func foundations() tokens.Tree {
	return tokens.Tree{
		"breakpoints": tokens.Tree{"sm": "30em", "md": "48em", "lg": "62em", "xl": "80em", "2xl": "96em"},
		"colors":      colors(),
		"space":       space(),
		"sizes":       sizes(),
		"radii": tokens.Tree{
			"none": "0", "sm": "0.125rem", "base": "0.25rem", "md": "0.375rem", "lg": "0.5rem",
			"xl": "0.75rem", "2xl": "1rem", "3xl": "1.5rem", "full": "9999px",
		},
		"fonts": tokens.Tree{
			"heading": `-apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif`,
			"body":    `-apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif`,
			"mono":    `SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
		},
		"fontSizes": tokens.Tree{
			"xs": "0.75rem", "sm": "0.875rem", "md": "1rem", "lg": "1.125rem", "xl": "1.25rem",
			"2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem", "5xl": "3rem", "6xl": "3.75rem",
			"7xl": "4.5rem", "8xl": "6rem", "9xl": "8rem",
		},
		"fontWeights": tokens.Tree{
			"hairline": 100, "thin": 200, "light": 300, "normal": 400, "medium": 500,
			"semibold": 600, "bold": 700, "extrabold": 800, "black": 900,
		},
		"lineHeights": tokens.Tree{
			"normal": "normal", "none": 1, "shorter": 1.25, "short": 1.375, "base": 1.5,
			"tall": 1.625, "taller": "2", "3": ".75rem", "4": "1rem", "5": "1.25rem",
			"6": "1.5rem", "7": "1.75rem", "8": "2rem", "9": "2.25rem", "10": "2.5rem",
		},
		"letterSpacings": tokens.Tree{
			"tighter": "-0.05em", "tight": "-0.025em", "normal": "0",
			"wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
		},
		"borders": tokens.Tree{
			"none": 0, "1px": "1px solid", "2px": "2px solid", "4px": "4px solid", "8px": "8px solid",
		},
		"shadows": tokens.Tree{
			"xs":      "0 0 0 1px rgba(0, 0, 0, 0.05)",
			"sm":      "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			"base":    "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)",
			"md":      "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			"lg":      "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			"xl":      "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
			"2xl":     "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
			"outline": "0 0 0 3px rgba(66, 153, 225, 0.6)",
			"inner":   "inset 0 2px 4px 0 rgba(0,0,0,0.06)",
			"none":    "none",
			"dark-lg": "rgba(0, 0, 0, 0.1) 0px 0px 0px 1px, rgba(0, 0, 0, 0.2) 0px 5px 10px, rgba(0, 0, 0, 0.4) 0px 15px 40px",
		},
		"zIndices": tokens.Tree{
			"hide": -1, "auto": "auto", "base": 0, "docked": 10, "dropdown": 1000,
			"sticky": 1100, "banner": 1200, "overlay": 1300, "modal": 1400, "popover": 1500,
			"skipLink": 1600, "toast": 1700, "tooltip": 1800,
		},
	}
}
