package formdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// A file-like value is any io.Reader. Two optional capabilities refine
// how its part is rendered:
//
//   - Name() string — the filename attached to the part header; an
//     empty string means the source is anonymous. *os.File satisfies
//     this out of the box.
//   - ContentType() string — an explicitly declared content type, used
//     verbatim and ahead of any guessing.
//
// Sources that also implement io.Closer are closed once fully read,
// whether or not reading succeeded.
type named interface {
	Name() string
}

type contentTyped interface {
	ContentType() string
}

// SourceOption configures the optional filename and content type of a
// concrete source.
type SourceOption func(*sourceMeta)

type sourceMeta struct {
	name        string
	contentType string
}

func (m *sourceMeta) Name() string        { return m.name }
func (m *sourceMeta) ContentType() string { return m.contentType }

// WithFilename attaches a filename to a source.
func WithFilename(name string) SourceOption {
	return func(m *sourceMeta) { m.name = name }
}

// WithDeclaredType attaches an explicit content type to a source,
// overriding filename-based guessing and content sniffing.
func WithDeclaredType(contentType string) SourceOption {
	return func(m *sourceMeta) { m.contentType = contentType }
}

// BytesSource serves an in-memory byte slice as a file part.
type BytesSource struct {
	sourceMeta
	r *bytes.Reader
}

// NewBytesSource creates a source over data.
func NewBytesSource(data []byte, opts ...SourceOption) *BytesSource {
	s := &BytesSource{r: bytes.NewReader(data)}
	for _, opt := range opts {
		opt(&s.sourceMeta)
	}
	return s
}

func (s *BytesSource) Read(p []byte) (int, error) { return s.r.Read(p) }

// ReaderSource wraps an arbitrary io.Reader with part metadata. Closing
// it closes the wrapped reader when that reader is an io.Closer.
type ReaderSource struct {
	sourceMeta
	r io.Reader
}

// NewReaderSource wraps r.
func NewReaderSource(r io.Reader, opts ...SourceOption) *ReaderSource {
	s := &ReaderSource{r: r}
	for _, opt := range opts {
		opt(&s.sourceMeta)
	}
	return s
}

func (s *ReaderSource) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *ReaderSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FileSource serves a file on disk. The file is opened on first read
// and closed by the engine once fully read. The part filename defaults
// to the path's base name.
type FileSource struct {
	sourceMeta
	path string
	f    *os.File
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string, opts ...SourceOption) *FileSource {
	s := &FileSource{path: path}
	s.name = filepath.Base(path)
	for _, opt := range opts {
		opt(&s.sourceMeta)
	}
	return s
}

func (s *FileSource) Read(p []byte) (int, error) {
	if s.f == nil {
		f, err := os.Open(s.path)
		if err != nil {
			return 0, err
		}
		s.f = f
	}
	return s.f.Read(p)
}

func (s *FileSource) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
