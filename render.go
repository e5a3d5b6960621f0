package formdata

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultBoundary is the fixed boundary token used when no other
// boundary is configured. Fixed boundaries keep output deterministic
// and byte-testable, but the assembler never scans part content for
// collisions; callers embedding arbitrary binary data can opt into
// WithRandomBoundary instead.
const DefaultBoundary = "BoUnDaRyStRiNgetpvelarptriznzsespgfmagoxpjpjluxkwqroqgsilzbdfsfgffddg"

// Renderer converts ordered fields into a multipart/form-data body. A
// Renderer is immutable after New returns and safe for concurrent use;
// the sources inside a Fields value are not, so each concurrent render
// needs its own.
type Renderer struct {
	boundary string
	guess    TypeGuesser
	sniff    bool
	log      *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBoundary substitutes a caller-supplied boundary token.
func WithBoundary(boundary string) Option {
	return func(r *Renderer) { r.boundary = boundary }
}

// WithRandomBoundary gives the renderer a fresh random boundary,
// making boundary collisions with binary part content vanishingly
// unlikely.
func WithRandomBoundary() Option {
	return func(r *Renderer) { r.boundary = randomBoundary() }
}

// WithTypeGuesser substitutes the filename-to-MIME-type collaborator.
// The guesser may return "" for unknown names.
func WithTypeGuesser(guess TypeGuesser) Option {
	return func(r *Renderer) { r.guess = guess }
}

// WithContentSniffing enables magic-number detection of a file part's
// content type when neither a declared type nor a filename guess is
// available.
func WithContentSniffing(enabled bool) Option {
	return func(r *Renderer) { r.sniff = enabled }
}

// WithLogger sets the logger used for debug-level render tracing.
func WithLogger(log *slog.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		boundary: DefaultBoundary,
		guess:    GuessByExtension,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Boundary returns the boundary token in use.
func (r *Renderer) Boundary() string { return r.boundary }

// ContentType returns the header value a caller should set alongside
// the rendered body.
func (r *Renderer) ContentType() string {
	return "multipart/form-data; boundary=" + r.boundary
}

// Parts encodes the fields into their ordered part list without
// assembling the final body. Any failure aborts the whole operation;
// no partial part list is returned.
func (r *Renderer) Parts(fields Fields) ([]Part, error) {
	var parts []Part
	var err error
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("empty field name: %w", ErrEncoding)
		}
		parts, err = r.encodeField(parts, f.Name, f.Value)
		if err != nil {
			return nil, err
		}
	}
	return parts, nil
}

// Render encodes the fields and assembles the complete
// multipart/form-data body.
func (r *Renderer) Render(fields Fields) ([]byte, error) {
	parts, err := r.Parts(fields)
	if err != nil {
		return nil, err
	}
	r.log.Debug("assembled multipart body", "fields", len(fields), "parts", len(parts))
	return assemble(parts, r.boundary), nil
}

// RenderTo encodes the fields and writes the body to w. The body is
// assembled in full before the first byte is written, so a failed
// encode never leaves a truncated body on the writer.
func (r *Renderer) RenderTo(w io.Writer, fields Fields) error {
	body, err := r.Render(fields)
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// assemble sequences parts into the final byte stream with boundary
// delimiters, per-part headers and CRLF framing. Zero parts still
// produce the closing delimiter line.
func assemble(parts []Part, boundary string) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString("--")
		buf.WriteString(boundary)
		buf.WriteString("\r\n")
		buf.WriteString(`Content-Disposition: form-data; name="`)
		buf.WriteString(escapeQuotes(p.Name))
		buf.WriteByte('"')
		if p.Filename != "" {
			buf.WriteString(`; filename="`)
			buf.WriteString(escapeQuotes(p.Filename))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\nContent-Type: ")
		buf.WriteString(p.ContentType)
		buf.WriteString("\r\n\r\n")
		buf.Write(p.Content)
		buf.WriteString("\r\n")
	}
	buf.WriteString("--")
	buf.WriteString(boundary)
	buf.WriteString("--\r\n")
	return buf.Bytes()
}

// quoteEscaper matches the escaping mime/multipart applies to header
// parameter values, so standard parsers round-trip names and filenames.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func randomBoundary() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read only fails when the platform's entropy
		// source is broken beyond use.
		panic(err)
	}
	return "FormDataBoundary" + hex.EncodeToString(buf[:])
}
