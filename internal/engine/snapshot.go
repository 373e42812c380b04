package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Snapshot pairs an engine with the color mode captured at the same instant,
// so a resolution never mixes one theme with another's mode.
type Snapshot struct {
	Engine *Engine
	Mode   colormode.ColorMode
}

// Resolve resolves req with the captured engine and mode.
func (s Snapshot) Resolve(ctx context.Context, req Request) (Result, error) {
	return s.Engine.Resolve(ctx, req, s.Mode)
}

// Runtime tracks the active theme and color mode and hands out snapshots.
// The engine for the current theme is rebuilt only when the theme changes.
type Runtime struct {
	themes *theme.Manager
	modes  *colormode.Manager
	opts   Options

	mu     sync.Mutex
	engine *Engine
}

// NewRuntime creates a Runtime over the given holders.
func NewRuntime(themes *theme.Manager, modes *colormode.Manager, opts Options) *Runtime {
	return &Runtime{themes: themes, modes: modes, opts: opts}
}

// Snapshot captures the current theme and mode together.
func (r *Runtime) Snapshot() (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.themes.Current()
	mode := r.modes.Current()

	if r.engine == nil || r.engine.Theme() != current {
		eng, err := New(current, r.opts)
		if err != nil {
			return Snapshot{}, err
		}
		r.engine = eng
	}
	return Snapshot{Engine: r.engine, Mode: mode}, nil
}

// Modes returns the color mode holder.
func (r *Runtime) Modes() *colormode.Manager {
	return r.modes
}

// Themes returns the theme holder.
func (r *Runtime) Themes() *theme.Manager {
	return r.themes
}

// ToggleMode flips the color mode and publishes colormode.changed.
func (r *Runtime) ToggleMode(ctx context.Context) colormode.ColorMode {
	next := r.modes.Toggle()
	r.publish(ctx, ports.EventColorModeChanged, map[string]interface{}{
		"from": next.Opposite().String(),
		"to":   next.String(),
	})
	return next
}

// SwapTheme makes t the active theme and publishes theme.swapped. The engine
// for t is built eagerly so a broken theme is rejected before it goes live.
func (r *Runtime) SwapTheme(ctx context.Context, t *theme.Theme) error {
	if t == nil {
		return fmt.Errorf("theme is nil")
	}
	eng, err := New(t, r.opts)
	if err != nil {
		return err
	}

	r.mu.Lock()
	previous := r.themes.Swap(t)
	r.engine = eng
	r.mu.Unlock()

	r.publish(ctx, ports.EventThemeSwapped, map[string]interface{}{
		"from": previous.Name,
		"to":   t.Name,
	})
	return nil
}

func (r *Runtime) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if r.opts.Events == nil {
		return
	}
	if err := r.opts.Events.Publish(ctx, events.New(eventType, data)); err != nil && r.opts.Logger != nil {
		r.opts.Logger.Warn(ctx, "publish event failed", "event_type", eventType, "error", err)
	}
}
