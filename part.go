package formdata

// Part is one body part of a multipart/form-data payload: the field
// name it answers to, its raw content and the content type advertised
// in the part header. Filename is set only for parts produced from a
// named file source.
type Part struct {
	Name        string
	Content     []byte
	ContentType string
	Filename    string
}

// newTextPart creates a text/plain part from an already validated
// UTF-8 string.
func newTextPart(name, text string) Part {
	return Part{Name: name, Content: []byte(text), ContentType: "text/plain; charset=utf-8"}
}

// newJSONPart creates an application/json part from compact JSON bytes.
func newJSONPart(name string, doc []byte) Part {
	return Part{Name: name, Content: doc, ContentType: "application/json"}
}

// newFilePart creates a part carrying the bytes of a file source.
// filename may be empty when the source is anonymous.
func newFilePart(name string, content []byte, contentType, filename string) Part {
	return Part{Name: name, Content: content, ContentType: contentType, Filename: filename}
}
