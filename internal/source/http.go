package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type httpGetter interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPGetter(retries int, timeout time.Duration, logger ports.Logger) httpGetter {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = retryLogger{logger: logger}
	client.HTTPClient.Timeout = timeout
	return client.StandardClient()
}

func (l *Loader) fetchHTTP(ctx context.Context, loc Location) (*Fetched, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, nil)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindHTTP), loc.Raw, err)
	}
	req.Header.Set("Accept", "application/yaml, application/json, application/toml;q=0.9, */*;q=0.5")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindHTTP), loc.Raw, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, themeerrors.NewSourceError(string(KindHTTP), loc.Raw, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindHTTP), loc.Raw, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, themeerrors.NewSourceError(string(KindHTTP), loc.Raw, fmt.Errorf("document exceeds %d bytes", l.maxBytes))
	}

	return &Fetched{Location: loc, Format: formatFromContentType(resp.Header.Get("Content-Type"), loc.Format()), Data: data}, nil
}

func formatFromContentType(header string, fallback config.Format) config.Format {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fallback
	}
	switch mediaType {
	case "application/json":
		return config.FormatJSON
	case "application/toml":
		return config.FormatTOML
	case "application/yaml", "application/x-yaml", "text/yaml":
		return config.FormatYAML
	default:
		return fallback
	}
}

// retryLogger routes retryablehttp messages to the structured logger.
type retryLogger struct {
	logger ports.Logger
}

func (r retryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.logger.Error(context.Background(), msg, keysAndValues...)
}

func (r retryLogger) Info(msg string, keysAndValues ...interface{}) {
	r.logger.Debug(context.Background(), msg, keysAndValues...)
}

func (r retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.logger.Debug(context.Background(), msg, keysAndValues...)
}

func (r retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.logger.Warn(context.Background(), msg, keysAndValues...)
}
