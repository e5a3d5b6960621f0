package formdata

import (
	"bytes"
	"encoding/json"
)

// Field is a single (name, value) pair of the form payload.
type Field struct {
	Name  string
	Value any
}

// Fields is the ordered top-level input of a render operation. Slice
// order is preserved into part order, so two renders of the same Fields
// value produce byte-identical bodies.
type Fields []Field

// Add appends a field and returns the extended slice, so payloads can
// be built fluently:
//
//	fields := formdata.Fields{}.
//	    Add("title", "Project Alpha").
//	    Add("tags", []string{"web", "api"})
func (f Fields) Add(name string, value any) Fields {
	return append(f, Field{Name: name, Value: value})
}

// MarshalJSON renders the fields as a JSON object with keys in slice
// order, so a Fields value nested inside another payload behaves like
// an ordered mapping.
func (f Fields) MarshalJSON() ([]byte, error) {
	return Object(f).MarshalJSON()
}

// Object is an ordered JSON object. Plain Go maps are accepted as
// mappings too, but encoding/json emits their keys sorted; Object is
// the vehicle when insertion order must survive into the JSON text.
type Object []Field

// MarshalJSON implements json.Marshaler, emitting members in slice
// order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
