package formdata

import (
	"io"
	"log/slog"
)

// TestBoundary is the short boundary used by NewForTesting so expected
// bodies in tests stay readable.
const TestBoundary = "BoUnDaRyStRiNg"

// NewForTesting creates a Renderer with a short fixed boundary and a
// discarded logger, suitable for exact-bytes assertions in tests.
func NewForTesting(opts ...Option) *Renderer {
	base := []Option{
		WithBoundary(TestBoundary),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(append(base, opts...)...)
}
