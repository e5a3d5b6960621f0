package formdata

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Runner lets RenderAll schedule work with any concurrency model.
type Runner interface {
	Go(fn func() error) // schedule
	Wait() error        // join / propagate first err
}

// DefaultRunner returns the default implementation backed by
// errgroup.Group, bounded to the number of CPUs.
func DefaultRunner(ctx context.Context) Runner {
	return newErrGroupRunner(ctx, runtime.NumCPU())
}

// NewLimitedRunner creates a runner with bounded concurrency.
func NewLimitedRunner(ctx context.Context, maxConcurrency int) Runner {
	return newErrGroupRunner(ctx, maxConcurrency)
}

// RenderAll renders independent payloads concurrently and returns the
// bodies in payload order. Each render is fully independent (the
// Renderer is immutable) provided the payloads do not share sources. A
// nil runner falls back to DefaultRunner. The first failed render
// aborts the batch; no partial bodies are returned.
func (r *Renderer) RenderAll(ctx context.Context, run Runner, payloads []Fields) ([][]byte, error) {
	if run == nil {
		run = DefaultRunner(ctx)
	}

	bodies := make([][]byte, len(payloads))
	for i := range payloads {
		i := i // capture per-iteration; required under go < 1.22 loop semantics
		run.Go(func() error {
			body, err := r.Render(payloads[i])
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := run.Wait(); err != nil {
		return nil, err
	}
	return bodies, nil
}

type errGroupRunner struct {
	ctx context.Context // derived ctx shared by all tasks
	eg  *errgroup.Group
	sem chan struct{} // concurrency gate
}

func newErrGroupRunner(parent context.Context, maxConcurrency int) *errGroupRunner {
	eg, ctx := errgroup.WithContext(parent)
	return &errGroupRunner{
		ctx: ctx,
		eg:  eg,
		sem: make(chan struct{}, maxConcurrency),
	}
}

func (r *errGroupRunner) Go(fn func() error) {
	r.eg.Go(func() error {
		r.sem <- struct{}{}        // acquire
		defer func() { <-r.sem }() // release
		return fn()
	})
}

func (r *errGroupRunner) Wait() error { return r.eg.Wait() }
