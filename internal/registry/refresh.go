package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/source"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Fetcher reads raw theme documents.
type Fetcher interface {
	Fetch(ctx context.Context, raw string) (*source.Fetched, error)
}

// Check fetches, validates and builds the theme behind e.
func Check(ctx context.Context, f Fetcher, e Entry) CachedStatus {
	status := CachedStatus{Status: StatusUnknown, CheckedAt: time.Now()}

	fetched, err := f.Fetch(ctx, e.Location)
	if err != nil {
		status.Status = StatusUnreachable
		status.Summary = "fetch failed"
		status.Error = err.Error()
		return status
	}
	status.Revision = fetched.Revision

	doc, err := config.Parse(fetched.Data, fetched.Format, e.Location)
	if err != nil {
		return invalid(status, err)
	}

	t, err := config.Build(doc)
	if err != nil {
		return invalid(status, err)
	}

	status.Status = StatusValid
	status.Components = t.Components.Len()
	status.Tokens = len(t.Tokens.Paths())
	status.Summary = fmt.Sprintf("%d components, %d tokens", status.Components, status.Tokens)
	return status
}

func invalid(status CachedStatus, err error) CachedStatus {
	status.Status = StatusInvalid
	status.Error = err.Error()

	var parseErr *themeerrors.ParseError
	var validationErr *themeerrors.ValidationError
	switch {
	case errors.As(err, &parseErr):
		status.Summary = "parse error"
	case errors.As(err, &validationErr):
		status.Summary = "invalid " + validationErr.Field
	default:
		status.Summary = "build failed"
	}
	return status
}

// Refresh checks every registered theme with at most workers concurrent
// fetches and records the results in cache.
func Refresh(ctx context.Context, reg *Registry, cache *StatusCache, f Fetcher, workers int) map[string]CachedStatus {
	entries := reg.List()
	if workers <= 0 {
		workers = 1
	}

	results := make(map[string]CachedStatus, len(entries))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, e := range entries {
		e := e
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			status := Check(ctx, f, e)
			cache.Set(e.ID, status)

			mu.Lock()
			results[e.ID] = status
			mu.Unlock()
		}()
	}

	wg.Wait()
	return results
}
