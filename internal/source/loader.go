package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	defaultRetries  = 3
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 4 << 20
)

// Fetched is a raw theme document and where it came from.
type Fetched struct {
	Location Location
	Format   config.Format
	Data     []byte
	// Revision is the resolved git commit for git locations.
	Revision string
}

// Loader fetches theme documents from any supported location.
type Loader struct {
	logger   ports.Logger
	retries  int
	timeout  time.Duration
	maxBytes int64
	http     httpGetter
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader logger.
func WithLogger(logger ports.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRetries bounds HTTP retries.
func WithRetries(n int) Option {
	return func(l *Loader) {
		if n >= 0 {
			l.retries = n
		}
	}
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithMaxBytes caps the size of remote documents.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// New builds a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger:   logging.NewNoOpLogger(),
		retries:  defaultRetries,
		timeout:  defaultTimeout,
		maxBytes: defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("layer", "source")
	l.http = newHTTPGetter(l.retries, l.timeout, l.logger)
	return l
}

// Fetch reads the raw document at raw.
func (l *Loader) Fetch(ctx context.Context, raw string) (*Fetched, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var fetched *Fetched
	switch loc.Kind {
	case KindFile:
		fetched, err = l.fetchFile(loc)
	case KindHTTP:
		fetched, err = l.fetchHTTP(ctx, loc)
	case KindGit:
		fetched, err = l.fetchGit(ctx, loc)
	default:
		err = themeerrors.NewSourceError(string(loc.Kind), raw, fmt.Errorf("unsupported location kind"))
	}
	if err != nil {
		l.logger.Warn(ctx, "theme fetch failed", "location", raw, "kind", string(loc.Kind), "error", err)
		return nil, err
	}

	l.logger.Debug(ctx, "theme fetched",
		"location", raw,
		"kind", string(loc.Kind),
		"size", humanize.Bytes(uint64(len(fetched.Data))),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return fetched, nil
}

// Document fetches and validates the document at raw.
func (l *Loader) Document(ctx context.Context, raw string) (*config.Document, *Fetched, error) {
	fetched, err := l.Fetch(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	doc, err := config.Parse(fetched.Data, fetched.Format, raw)
	if err != nil {
		return nil, fetched, err
	}
	return doc, fetched, nil
}

// Load fetches, validates and builds the theme at raw.
func (l *Loader) Load(ctx context.Context, raw string) (*theme.Theme, error) {
	doc, _, err := l.Document(ctx, raw)
	if err != nil {
		return nil, err
	}
	built, err := config.Build(doc)
	if err != nil {
		return nil, err
	}
	l.logger.Info(ctx, "theme loaded", "location", raw, "theme", built.Name, "components", built.Components.Len())
	return built, nil
}

func (l *Loader) fetchFile(loc Location) (*Fetched, error) {
	data, err := os.ReadFile(loc.Path)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindFile), loc.Raw, err)
	}
	return &Fetched{Location: loc, Format: loc.Format(), Data: data}, nil
}
