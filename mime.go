package formdata

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// TypeGuesser maps a filename to a MIME type. An empty return value
// means the guesser has no answer and the engine moves on to the next
// resolution step.
type TypeGuesser func(filename string) string

// GuessByExtension is the default TypeGuesser. It consults the standard
// extension table, so "report.pdf" resolves to "application/pdf" and an
// unknown or missing extension resolves to "".
func GuessByExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}

// DetectFileType reports the MIME type of the file at path by sniffing
// its content, falling back to the extension table when the file cannot
// be read. Useful for declaring a type up front:
//
//	formdata.NewFileSource(path, formdata.WithDeclaredType(formdata.DetectFileType(path)))
func DetectFileType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return GuessByExtension(path)
}

// sniffContentType detects a MIME type from raw content. Only consulted
// when sniffing is enabled and both the declared type and the filename
// guess came up empty.
func sniffContentType(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return mimetype.Detect(data).String()
}
