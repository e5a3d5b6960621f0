package formdata

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"unicode/utf8"
)

// encodeField appends the parts for one (name, value) pair to dst and
// returns the extended slice. A flat collection re-enters this function
// once per element, so each element is classified and encoded on its
// own while keeping the field's name.
func (r *Renderer) encodeField(dst []Part, name string, v any) ([]Part, error) {
	v = indirect(v)

	tag, err := classify(v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	r.log.Debug("classified field value", "name", name, "tag", tag.String())

	switch tag {
	case tagText:
		text := asString(v)
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("field %q: invalid UTF-8 text: %w", name, ErrEncoding)
		}
		return append(dst, newTextPart(name, text)), nil

	case tagNumber, tagBoolean, tagMapping, tagNestedCollection:
		doc, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %v: %w", name, err, ErrEncoding)
		}
		return append(dst, newJSONPart(name, doc)), nil

	case tagNull:
		return append(dst, newJSONPart(name, []byte("null"))), nil

	case tagFile:
		part, err := r.encodeSource(name, v)
		if err != nil {
			return nil, err
		}
		return append(dst, part), nil

	case tagFlatCollection:
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			dst, err = r.encodeField(dst, name, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	return nil, fmt.Errorf("field %q: %w: %T", name, ErrUnsupportedType, v)
}

// encodeSource reads a byte source fully and resolves its content type:
// the declared type wins, then the filename guess, then (when enabled)
// content sniffing, then application/octet-stream.
func (r *Renderer) encodeSource(name string, v any) (Part, error) {
	content, filename, declared, err := readSource(v)
	if err != nil {
		return Part{}, fmt.Errorf("field %q: %v: %w", name, err, ErrSourceRead)
	}

	contentType := declared
	if contentType == "" && filename != "" {
		contentType = r.guess(filename)
	}
	if contentType == "" && r.sniff {
		contentType = sniffContentType(content)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	r.log.Debug("encoded file part",
		"name", name, "filename", filename, "content_type", contentType, "size", len(content))
	return newFilePart(name, content, contentType, filename), nil
}

// readSource drains a file-like value. Sources implementing io.Closer
// are closed once reading finishes, success or failure; the close error
// is ignored since the bytes are already in hand.
func readSource(v any) (content []byte, filename, declared string, err error) {
	src, ok := v.(io.Reader)
	if !ok {
		// Raw byte slices, including named byte slice types.
		return reflect.ValueOf(v).Bytes(), "", "", nil
	}

	if c, ok := src.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	if n, ok := src.(named); ok && n.Name() != "" {
		filename = filepath.Base(n.Name())
	}
	if t, ok := src.(contentTyped); ok {
		declared = t.ContentType()
	}

	content, err = io.ReadAll(src)
	if err != nil {
		return nil, "", "", err
	}
	return content, filename, declared, nil
}

// asString extracts the text of a tagText value, covering named string
// types as well.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}
