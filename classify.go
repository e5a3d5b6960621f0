package formdata

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// typeTag identifies which encoding rule applies to a value. The
// enumeration is closed: classify either returns one of these tags or
// fails with ErrUnsupportedType.
type typeTag int

const (
	tagText typeTag = iota
	tagNumber
	tagBoolean
	tagNull
	tagMapping
	tagFlatCollection
	tagNestedCollection
	tagFile
)

func (t typeTag) String() string {
	switch t {
	case tagText:
		return "text"
	case tagNumber:
		return "number"
	case tagBoolean:
		return "boolean"
	case tagNull:
		return "null"
	case tagMapping:
		return "mapping"
	case tagFlatCollection:
		return "flat-collection"
	case tagNestedCollection:
		return "nested-collection"
	case tagFile:
		return "file"
	}
	return "unknown"
}

// classify inspects one value and returns the tag of the encoding rule
// that applies to it. It expects an already indirected value (see
// indirect); pointers reaching this point are sources or marshalers
// kept intact on purpose.
//
// Collections need a single pass over their elements: a collection
// holding at least one nested collection becomes tagNestedCollection
// and collapses to a single JSON part, everything else (scalars,
// mappings, files) flattens to one part per element.
func classify(v any) (typeTag, error) {
	if v == nil {
		return tagNull, nil
	}

	switch v.(type) {
	case io.Reader:
		return tagFile, nil
	case []byte:
		// A raw byte slice is a binary blob, not a collection of
		// numbers.
		return tagFile, nil
	case string:
		return tagText, nil
	case bool:
		return tagBoolean, nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return tagNumber, nil
	case json.Marshaler:
		// Types carrying their own JSON form (Object, Fields,
		// time.Time, ...) encode as a single JSON part.
		return tagMapping, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return tagText, nil
	case reflect.Bool:
		return tagBoolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return tagNumber, nil
	case reflect.Map, reflect.Struct:
		return tagMapping, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// Named byte slice types.
			return tagFile, nil
		}
		return classifyCollection(rv), nil
	}

	return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// classifyCollection distinguishes flat collections from nested ones.
// Empty collections are flat and flatten to zero parts.
func classifyCollection(rv reflect.Value) typeTag {
	for i := 0; i < rv.Len(); i++ {
		if isCollection(rv.Index(i)) {
			return tagNestedCollection
		}
	}
	return tagFlatCollection
}

// isCollection reports whether an element is itself an ordered
// collection. Byte slices and types with their own JSON form do not
// count: they flatten to a part of their own instead of forcing the
// parent collection into JSON.
func isCollection(ev reflect.Value) bool {
	for ev.Kind() == reflect.Interface || ev.Kind() == reflect.Pointer {
		if ev.IsNil() {
			return false
		}
		ev = ev.Elem()
	}
	switch ev.Kind() {
	case reflect.Slice:
		if ev.Type().Elem().Kind() == reflect.Uint8 {
			return false
		}
	case reflect.Array:
	default:
		return false
	}
	if ev.CanInterface() {
		if _, ok := ev.Interface().(json.Marshaler); ok {
			return false
		}
	}
	return true
}

// indirect peels pointers and interfaces off a value so classify sees
// the shape underneath. Sources and self-marshaling types stay intact,
// and nil pointers resolve to nil.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		if !rv.CanInterface() {
			break
		}
		switch rv.Interface().(type) {
		case io.Reader, json.Marshaler:
			return rv.Interface()
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
