package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type recordedEntry struct {
	level  string
	msg    string
	fields []interface{}
}

type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]recordedEntry
	fields  []interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]recordedEntry{}}
}

func (l *recordingLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(append([]interface{}{}, l.fields...), fields...)
	*l.entries = append(*l.entries, recordedEntry{level: level, msg: msg, fields: all})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, fields ...interface{}) {
	l.record("debug", msg, fields)
}
func (l *recordingLogger) Info(_ context.Context, msg string, fields ...interface{}) {
	l.record("info", msg, fields)
}
func (l *recordingLogger) Warn(_ context.Context, msg string, fields ...interface{}) {
	l.record("warn", msg, fields)
}
func (l *recordingLogger) Error(_ context.Context, msg string, fields ...interface{}) {
	l.record("error", msg, fields)
}
func (l *recordingLogger) With(fields ...interface{}) ports.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, fields: append(append([]interface{}{}, l.fields...), fields...)}
}

func (l *recordingLogger) find(msg string) (recordedEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range *l.entries {
		if entry.msg == msg {
			return entry, true
		}
	}
	return recordedEntry{}, false
}

func field(entry recordedEntry, key string) interface{} {
	for i := 0; i+1 < len(entry.fields); i += 2 {
		if entry.fields[i] == key {
			return entry.fields[i+1]
		}
	}
	return nil
}

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	eng, err := New(theme.Default(), opts)
	require.NoError(t, err)
	return eng
}

func TestResolveBadge(t *testing.T) {
	t.Parallel()

	res, err := newEngine(t, Options{}).Resolve(context.Background(), Request{Component: "Badge"}, colormode.Light)
	require.NoError(t, err)

	require.Equal(t, "Badge", res.Component)
	require.Empty(t, res.Parts)
	require.Equal(t, "var(--chakra-colors-gray-100)", res.Style["background"])
	require.Equal(t, "var(--chakra-colors-gray-800)", res.Style["color"])
	require.Equal(t, "var(--chakra-space-1)", res.Style["paddingInlineStart"])
	require.Equal(t, "var(--chakra-fontSizes-xs)", res.Style["fontSize"])
	require.Equal(t, "uppercase", res.Style["textTransform"])
}

func TestResolveModes(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, Options{Raw: true})
	req := Request{Component: "Badge", Variant: "solid", ColorScheme: "green"}

	light, err := eng.Resolve(context.Background(), req, colormode.Light)
	require.NoError(t, err)
	dark, err := eng.Resolve(context.Background(), req, colormode.Dark)
	require.NoError(t, err)

	require.Equal(t, "green.500", light.Style["bg"])
	require.Equal(t, "green.300", dark.Style["bg"])

	_, err = eng.Resolve(context.Background(), req, "")
	require.ErrorIs(t, err, themeerrors.ErrMissingColorMode)
}

func TestResolveValues(t *testing.T) {
	t.Parallel()

	res, err := newEngine(t, Options{Values: true}).Resolve(context.Background(), Request{Component: "Badge"}, colormode.Light)
	require.NoError(t, err)
	require.Equal(t, "#EDF2F7", res.Style["background"])
	require.Equal(t, "0.25rem", res.Style["paddingInlineStart"])
}

func TestResolveMultiPart(t *testing.T) {
	t.Parallel()

	res, err := newEngine(t, Options{}).Resolve(context.Background(), Request{Component: "Table", Size: "sm"}, colormode.Dark)
	require.NoError(t, err)

	require.Len(t, res.Parts, 8)
	th := res.Part("th")
	require.Equal(t, "var(--chakra-space-4)", th["paddingInlineStart"])
	require.Equal(t, "var(--chakra-space-1)", th["paddingTop"])
	require.Equal(t, "var(--chakra-colors-gray-400)", th["color"])
	require.Equal(t, style.Object{"textAlign": "right"}, th["&[data-is-numeric=true]"])
	require.Contains(t, res.Part("tfoot"), "tr")
}

func TestResolveResponsiveOverride(t *testing.T) {
	t.Parallel()

	res, err := newEngine(t, Options{}).Resolve(context.Background(), Request{
		Component:   "Link",
		StyleConfig: style.Object{"fontSize": style.Object{"base": "sm", "md": "lg"}},
	}, colormode.Light)
	require.NoError(t, err)

	require.Equal(t, "var(--chakra-fontSizes-sm)", res.Style["fontSize"])
	require.Equal(t, style.Object{"fontSize": "var(--chakra-fontSizes-lg)"}, res.Style["@media screen and (min-width: 48em)"])
	require.Equal(t, style.Object{"textDecoration": "underline"}, res.Style["_hover"])
}

func TestResolveUnknownComponent(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t, Options{}).Resolve(context.Background(), Request{Component: "Spaceship"}, colormode.Light)
	require.ErrorIs(t, err, themeerrors.ErrUnknownComponent)
}

func TestResolveCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEngine(t, Options{}).Resolve(ctx, Request{Component: "Badge"}, colormode.Light)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolveLogsStages(t *testing.T) {
	t.Parallel()

	logger := newRecordingLogger()
	_, err := newEngine(t, Options{Logger: logger}).Resolve(context.Background(), Request{Component: "Link", Variant: "ghost"}, colormode.Dark)
	require.NoError(t, err)

	entry, ok := logger.find("request resolved")
	require.True(t, ok)
	require.Equal(t, "debug", entry.level)
	require.Equal(t, "Link", field(entry, "component"))
	require.Equal(t, "ghost", field(entry, "variant"))
	require.Equal(t, "dark", field(entry, "color_mode"))
	require.Equal(t, "engine", field(entry, "layer"))
	require.Equal(t, theme.DefaultName, field(entry, "theme"))
}

func TestResolveAllMatrix(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, Options{})
	reqs := eng.Matrix("blue")
	require.NotEmpty(t, reqs)

	results, err := eng.ResolveAll(context.Background(), reqs, colormode.Dark, 4)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))
	for i, res := range results {
		require.Equal(t, reqs[i].Component, res.Component)
	}
}

func TestResolveAllStopsOnError(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, Options{})
	reqs := []Request{{Component: "Badge"}, {Component: "Nope"}, {Component: "Link"}}

	_, err := eng.ResolveAll(context.Background(), reqs, colormode.Light, 1)
	require.ErrorIs(t, err, themeerrors.ErrUnknownComponent)
}

func TestResolveAllCanceledContext(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 200; i++ {
		results, err := eng.ResolveAll(ctx, []Request{{Component: "Badge"}}, colormode.Light, 1)
		require.ErrorIs(t, err, context.Canceled)
		require.Len(t, results, 1)
		require.Empty(t, results[0].Component)
	}

	_, err := eng.ResolveAll(ctx, eng.Matrix(""), colormode.Dark, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMatrixCoversVariantsAndSizes(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, Options{})
	var table int
	for _, req := range eng.Matrix("") {
		if req.Component == "Table" {
			table++
		}
	}
	require.Equal(t, 9, table)
}

func TestRuntimeSnapshot(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager(nil)
	modes := colormode.NewManager(colormode.Light)
	rt := NewRuntime(themes, modes, Options{Raw: true})

	first, err := rt.Snapshot()
	require.NoError(t, err)
	require.Equal(t, colormode.Light, first.Mode)

	modes.Toggle()
	second, err := rt.Snapshot()
	require.NoError(t, err)
	require.Equal(t, colormode.Dark, second.Mode)
	require.Same(t, first.Engine, second.Engine)

	res, err := first.Resolve(context.Background(), Request{Component: "Badge"})
	require.NoError(t, err)
	require.Equal(t, "gray.100", res.Style["bg"])

	res, err = second.Resolve(context.Background(), Request{Component: "Badge"})
	require.NoError(t, err)
	require.Equal(t, "gray.800", res.Style["bg"])

	themes.Swap(theme.Default())
	third, err := rt.Snapshot()
	require.NoError(t, err)
	require.NotSame(t, first.Engine, third.Engine)
}

func TestNewRejectsNilTheme(t *testing.T) {
	t.Parallel()

	_, err := New(nil, Options{})
	require.Error(t, err)
}

func TestRuntimePublishesChanges(t *testing.T) {
	t.Parallel()

	logger := newRecordingLogger()
	publisher := events.NewLoggingPublisher(logger)

	var seen []string
	for _, eventType := range []string{ports.EventColorModeChanged, ports.EventThemeSwapped} {
		_, err := publisher.Subscribe(eventType, func(_ context.Context, event ports.DomainEvent) error {
			data, _ := event.Payload().(map[string]interface{})
			seen = append(seen, event.EventType()+":"+data["to"].(string))
			return nil
		})
		require.NoError(t, err)
	}

	rt := NewRuntime(theme.NewManager(nil), colormode.NewManager(colormode.Light), Options{Raw: true, Events: publisher})
	ctx := context.Background()

	require.Equal(t, colormode.Dark, rt.ToggleMode(ctx))
	require.Equal(t, colormode.Dark, rt.Modes().Current())

	brand, err := theme.Extend(theme.Default(), theme.Override{Name: "brand"})
	require.NoError(t, err)
	require.NoError(t, rt.SwapTheme(ctx, brand))
	require.Same(t, brand, rt.Themes().Current())

	snap, err := rt.Snapshot()
	require.NoError(t, err)
	require.Same(t, brand, snap.Engine.Theme())

	require.Equal(t, []string{"colormode.changed:dark", "theme.swapped:brand"}, seen)
	entry, ok := logger.find("event")
	require.True(t, ok)
	require.Contains(t, entry.fields, ports.EventColorModeChanged)

	require.Error(t, rt.SwapTheme(ctx, nil))
	require.Same(t, brand, rt.Themes().Current())
}
