package formdata

import "errors"

// Sentinel errors returned (wrapped) by the rendering pipeline. Callers
// should match them with errors.Is.
var (
	// ErrUnsupportedType is returned when a field value matches none of
	// the recognised shapes. There is no safe default encoding, so the
	// whole render aborts.
	ErrUnsupportedType = errors.New("formdata: unsupported type")

	// ErrSourceRead is returned when a byte source cannot be read to
	// completion. A partially read source would produce a malformed
	// multipart body, so the whole render aborts.
	ErrSourceRead = errors.New("formdata: source read failed")

	// ErrEncoding is returned when a value cannot be represented as
	// UTF-8 text or JSON (non-string map keys, invalid UTF-8 strings,
	// NaN floats and the like).
	ErrEncoding = errors.New("formdata: encoding failed")
)
