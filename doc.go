// Package formdata renders heterogeneous in-memory values into
// multipart/form-data bodies. Given an ordered set of named fields —
// strings, numbers, booleans, nil, nested mappings, collections and
// file-like byte sources — it decides per value which content type to
// advertise and how to serialise its bytes, flattens multi-valued
// fields into repeated parts and collapses deeply nested structures
// into embedded JSON text.
//
// # Encoding rules
//
// Each field value is classified structurally and encoded by the rule
// its shape selects:
//
//   - string → text/plain; charset=utf-8, bytes verbatim
//   - numbers, booleans → application/json, compact JSON scalar
//   - nil → application/json, the literal null
//   - mappings (maps, structs, Object) → application/json, one compact
//     JSON document with nested structure expanded inline
//   - flat collections → one part per element, all sharing the field
//     name, each element encoded by its own rule
//   - collections containing collections → a single application/json
//     part holding the whole value
//   - io.Reader and []byte → a file part; the content type comes from
//     the source's declared type, then from the filename via the
//     pluggable guesser, then application/octet-stream
//
// Values matching none of these shapes abort the render with
// ErrUnsupportedType; nothing is silently dropped and no partial body
// is ever returned.
//
// # Basic usage
//
//	r := formdata.New()
//	body, err := r.Render(formdata.Fields{}.
//	    Add("title", "Project Alpha").
//	    Add("metadata", formdata.Object{{"version", 1.0}, {"active", true}}).
//	    Add("image", formdata.NewFileSource("logo.png")).
//	    Add("tags", []string{"web", "api"}))
//	if err != nil {
//	    // handle err
//	}
//	// Send body with the header value r.ContentType().
//
// The payload above produces five parts: one plain text, one JSON
// object, one binary file and two "tags" text entries.
//
// # File sources
//
// Any io.Reader works as a file source; *os.File needs no wrapping
// since its Name method doubles as the filename capability. In-memory
// and metadata-carrying sources are available too:
//
//	formdata.NewBytesSource(pdf,
//	    formdata.WithFilename("report.pdf"))
//	formdata.NewReaderSource(resp.Body,
//	    formdata.WithDeclaredType("image/png"))
//
// Sources implementing io.Closer are closed once fully read.
//
// # Typed payloads
//
// Structs convert to ordered fields through `form:` tags, mirroring
// the encoding/json tag conventions:
//
//	type Upload struct {
//	    Title string   `form:"title"`
//	    Tags  []string `form:"tags,omitempty"`
//	    Draft bool     `form:"-"`
//	}
//	body, contentType, err := formdata.Marshal(Upload{Title: "hi"})
//
// # Concurrency
//
// A Renderer is immutable and safe for concurrent use. RenderAll
// renders independent payloads in parallel through the Runner
// abstraction; sources must not be shared between concurrent renders,
// since reading consumes them.
package formdata
