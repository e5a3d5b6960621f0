package formdata

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// FieldsOf converts a value into ordered Fields ready for rendering.
// Accepted shapes:
//
//   - Fields / Object: returned as-is (already ordered)
//   - struct or *struct: one field per exported struct field, in
//     declaration order, honouring `form:"name,omitempty"` tags and
//     skipping fields tagged "-"
//   - string-keyed maps: keys sorted for deterministic output
//
// A nil value or nil pointer yields empty Fields.
func FieldsOf(v any) (Fields, error) {
	switch t := v.(type) {
	case nil:
		return Fields{}, nil
	case Fields:
		return t, nil
	case Object:
		return Fields(t), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Fields{}, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return structFields(rv), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map keys must be strings: %w", ErrEncoding)
		}
		return mapFields(rv), nil
	}
	return nil, fmt.Errorf("top-level value must be struct, map or Fields: %w", ErrUnsupportedType)
}

// Marshal renders v with a default Renderer and returns the body along
// with the Content-Type header value to send with it.
func Marshal(v any) (body []byte, contentType string, err error) {
	fields, err := FieldsOf(v)
	if err != nil {
		return nil, "", err
	}
	r := New()
	body, err = r.Render(fields)
	if err != nil {
		return nil, "", err
	}
	return body, r.ContentType(), nil
}

func structFields(rv reflect.Value) Fields {
	tags := cachedTags(rv.Type())
	fields := make(Fields, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		tag := tags[i]
		if tag.ignore {
			continue
		}
		fv := rv.Field(i)
		if tag.omitEmpty && isEmptyValue(fv) {
			continue
		}
		fields = append(fields, Field{Name: tag.name, Value: fv.Interface()})
	}
	return fields
}

func mapFields(rv reflect.Value) Fields {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	fields := make(Fields, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Name: k, Value: rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()})
	}
	return fields
}

// fieldTag is the parsed `form:` tag of one struct field.
type fieldTag struct {
	name      string
	omitEmpty bool
	ignore    bool
}

// structTagCache caches parsed tags per struct type across calls. Safe
// for concurrent use.
var structTagCache sync.Map

func cachedTags(t reflect.Type) []fieldTag {
	if cached, ok := structTagCache.Load(t); ok {
		return cached.([]fieldTag)
	}

	tags := make([]fieldTag, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			tags[i] = fieldTag{ignore: true}
			continue
		}
		tag := parseFieldTag(f.Tag.Get("form"))
		if !tag.ignore && tag.name == "" {
			tag.name = f.Name
		}
		tags[i] = tag
	}

	structTagCache.Store(t, tags)
	return tags
}

func parseFieldTag(str string) fieldTag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return fieldTag{ignore: true}
	}

	parts := strings.Split(str, ",")
	tag := fieldTag{name: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "omitempty" {
			tag.omitEmpty = true
		}
	}
	return tag
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
