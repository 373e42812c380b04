package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
)

// ResolveAll resolves reqs concurrently with at most workers in flight and
// returns results in request order. The first failure cancels the remaining
// requests and is returned alongside the results gathered so far. A request
// that never starts because ctx is done reports ctx.Err().
func (e *Engine) ResolveAll(ctx context.Context, reqs []Request, mode colormode.ColorMode, workers int) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Result, len(reqs))
	pool := make(chan struct{}, workers)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for idx, req := range reqs {
		wg.Add(1)
		go func(idx int, req Request) {
			defer wg.Done()

			select {
			case pool <- struct{}{}:
				defer func() { <-pool }()
			case <-ctx.Done():
				once.Do(func() { firstErr = ctx.Err() })
				return
			}

			res, err := e.Resolve(ctx, req, mode)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			results[idx] = res
		}(idx, req)
	}

	wg.Wait()
	return results, firstErr
}

// Matrix expands every registered component into one request per
// variant and size combination, in sorted order. Components without
// variants or sizes contribute a single default request.
func (e *Engine) Matrix(colorScheme string) []Request {
	var reqs []Request
	for _, name := range e.theme.Components.Names() {
		cfg, err := e.theme.Components.Get(name)
		if err != nil {
			continue
		}
		variants := cfg.VariantNames()
		if len(variants) == 0 {
			variants = []string{""}
		}
		sizes := cfg.SizeNames()
		if len(sizes) == 0 {
			sizes = []string{""}
		}
		for _, variant := range variants {
			for _, size := range sizes {
				reqs = append(reqs, Request{
					Component:   name,
					Variant:     variant,
					Size:        size,
					ColorScheme: colorScheme,
				})
			}
		}
	}
	return reqs
}
