// Package engine runs the per-request theming pipeline: component lookup,
// style config resolution, token interpolation and responsive expansion.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/interpolate"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/responsive"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Request is a single theming request.
type Request = styleconfig.Request

// Options tunes the pipeline.
type Options struct {
	Logger ports.Logger
	// Events receives theme.swapped and colormode.changed from a Runtime.
	Events ports.EventPublisher
	// Raw skips token interpolation and responsive expansion.
	Raw bool
	// Values interpolates tokens to their literal values instead of var() references.
	Values bool
}

// Result is the resolved style for one request.
type Result struct {
	Component string
	Mode      colormode.ColorMode
	// Parts lists declared parts for multi-part components; Style is then keyed by part.
	Parts []string
	Style style.Object
}

// Part returns the style of one part of a multi-part result.
func (r Result) Part(name string) style.Object {
	obj, _ := style.AsObject(r.Style[name])
	return obj
}

// Engine resolves requests against one theme. CSS variables and
// breakpoints are computed once in New.
type Engine struct {
	theme  *theme.Theme
	vars   cssvar.Projection
	bps    responsive.Breakpoints
	interp *interpolate.Interpolator
	logger ports.Logger
	opts   Options
}

// New prepares an engine for t.
func New(t *theme.Theme, opts Options) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("theme is nil")
	}

	bps, err := t.Breakpoints()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	vars := t.Project()
	return &Engine{
		theme:  t,
		vars:   vars,
		bps:    bps,
		interp: interpolate.New(t.Tokens, vars, interpolate.Options{Values: opts.Values}),
		logger: logger.With("layer", "engine", "theme", t.Name),
		opts:   opts,
	}, nil
}

// Theme returns the theme this engine resolves against.
func (e *Engine) Theme() *theme.Theme {
	return e.theme
}

// Vars returns the CSS variable projection of the theme tokens.
func (e *Engine) Vars() cssvar.Projection {
	return e.vars
}

// Breakpoints returns the ordered theme breakpoints.
func (e *Engine) Breakpoints() responsive.Breakpoints {
	return e.bps
}

// Resolve runs the pipeline for req under mode.
func (e *Engine) Resolve(ctx context.Context, req Request, mode colormode.ColorMode) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	log := e.logger.With(
		"component", req.Component,
		"variant", req.Variant,
		"size", req.Size,
		"color_mode", string(mode),
	)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	cfg, err := e.theme.Components.Get(req.Component)
	if err != nil {
		log.Debug(ctx, "component lookup failed", "error", err)
		return Result{}, err
	}

	resolved, err := styleconfig.Resolve(cfg, req, mode, e.theme.Tokens)
	if err != nil {
		log.Warn(ctx, "style config resolution failed", "error", err)
		return Result{}, err
	}
	log.Debug(ctx, "style config resolved", "keys", len(resolved))

	if !e.opts.Raw {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		resolved = e.finish(resolved, cfg)
	}

	log.Debug(ctx, "request resolved", "duration_ms", time.Since(start).Milliseconds())
	return Result{
		Component: req.Component,
		Mode:      mode,
		Parts:     append([]string(nil), cfg.Parts...),
		Style:     resolved,
	}, nil
}

// finish interpolates tokens and expands responsive values, part by part for
// multi-part configs.
func (e *Engine) finish(resolved style.Object, cfg styleconfig.Config) style.Object {
	if !cfg.IsMultiPart() {
		return responsive.Expand(e.interp.Apply(resolved), e.bps)
	}
	out := make(style.Object, len(resolved))
	for _, part := range cfg.Parts {
		obj, _ := style.AsObject(resolved[part])
		out[part] = responsive.Expand(e.interp.Apply(obj), e.bps)
	}
	return out
}
