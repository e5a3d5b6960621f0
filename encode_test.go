package formdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScalarParts(t *testing.T) {
	tests := map[string]struct {
		value           any
		wantContent     string
		wantContentType string
	}{
		"string": {"A simple test", "A simple test", "text/plain; charset=utf-8"},
		"int":    {33, "33", "application/json"},
		"float":  {1.5, "1.5", "application/json"},
		"bool":   {true, "true", "application/json"},
		"false":  {false, "false", "application/json"},
		"nil":    {nil, "null", "application/json"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			parts, err := NewForTesting().Parts(Fields{{"field", tc.value}})
			require.NoError(t, err)
			require.Len(t, parts, 1)
			assert.Equal(t, "field", parts[0].Name)
			assert.Equal(t, tc.wantContent, string(parts[0].Content))
			assert.Equal(t, tc.wantContentType, parts[0].ContentType)
			assert.Empty(t, parts[0].Filename)
		})
	}
}

func TestScalarEncodingIsIdempotent(t *testing.T) {
	r := NewForTesting()
	for _, value := range []any{42, 1.25, true, nil} {
		first, err := r.Parts(Fields{{"v", value}})
		require.NoError(t, err)
		second, err := r.Parts(Fields{{"v", value}})
		require.NoError(t, err)
		assert.Equal(t, first[0].Content, second[0].Content)
	}
}

func TestRenderMappingPart(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{
		{"metadata", map[string]any{"a": 1, "b": []int{1, 2}}},
	})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "application/json", parts[0].ContentType)
	assert.Equal(t, `{"a":1,"b":[1,2]}`, string(parts[0].Content))
}

func TestRenderObjectPreservesOrder(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{
		{"metadata", Object{{"version", 1.0}, {"active", true}, {"a", 3}}},
	})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, `{"version":1,"active":true,"a":3}`, string(parts[0].Content))
}

func TestRenderFlatCollection(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{{"tags", []string{"web", "api", "go"}}})
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for i, want := range []string{"web", "api", "go"} {
		assert.Equal(t, "tags", parts[i].Name)
		assert.Equal(t, want, string(parts[i].Content))
		assert.Equal(t, "text/plain; charset=utf-8", parts[i].ContentType)
	}
}

func TestRenderCollectionWithMappingElement(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{
		{"title", []any{"Test Item", Object{{"a", 3}, {"b", 2}}}},
	})
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "Test Item", string(parts[0].Content))
	assert.Equal(t, "text/plain; charset=utf-8", parts[0].ContentType)
	assert.Equal(t, "title", parts[1].Name)
	assert.Equal(t, `{"a":3,"b":2}`, string(parts[1].Content))
	assert.Equal(t, "application/json", parts[1].ContentType)
}

func TestRenderNestedCollectionCollapsesToJSON(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{{"grid", [][]int{{1, 2}, {3, 4}}}})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "application/json", parts[0].ContentType)
	assert.Equal(t, `[[1,2],[3,4]]`, string(parts[0].Content))
}

func TestRenderEmptyCollection(t *testing.T) {
	parts, err := NewForTesting().Parts(Fields{
		{"tags", []string{}},
		{"after", "still here"},
	})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "after", parts[0].Name)
}

func TestRenderErrors(t *testing.T) {
	r := NewForTesting()

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.Parts(Fields{{"ch", make(chan int)}})
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.ErrorContains(t, err, `field "ch"`)
	})

	t.Run("unsupported element", func(t *testing.T) {
		_, err := r.Parts(Fields{{"xs", []any{"ok", make(chan int)}}})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("invalid utf-8 string", func(t *testing.T) {
		_, err := r.Parts(Fields{{"s", "bad \xff\xfe"}})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("non-finite float", func(t *testing.T) {
		_, err := r.Parts(Fields{{"f", math.NaN()}})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("empty field name", func(t *testing.T) {
		_, err := r.Parts(Fields{{"", "x"}})
		assert.ErrorIs(t, err, ErrEncoding)
	})
}

func TestRenderPointerValues(t *testing.T) {
	title := "indirect"
	var missing *string

	parts, err := NewForTesting().Parts(Fields{
		{"title", &title},
		{"missing", missing},
	})
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "indirect", string(parts[0].Content))
	assert.Equal(t, "null", string(parts[1].Content))
	assert.Equal(t, "application/json", parts[1].ContentType)
}
