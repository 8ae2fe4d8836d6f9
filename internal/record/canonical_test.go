package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", -100, "-100"},
		{"int64", int64(9223372036854775807), "9223372036854775807"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"empty object", map[string]any{}, "{}"},
		{"string slice", []string{"a", "b"}, `["a","b"]`},
		{"mixed array", []any{1, "x", true}, `[1,"x",true]`},
		{"simple object", map[string]any{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": 1,
		"alpha": 2,
		"beta":  3,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"beta":3,"zebra":1}`, string(result))
}

func TestMarshalCanonicalNestedSortedKeys(t *testing.T) {
	obj := map[string]any{
		"z": map[string]any{
			"b": 1,
			"a": 2,
		},
		"a": 3,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"z":{"a":2,"b":1}}`, string(result))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	result, err := MarshalCanonical("a<b> & c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b> & c"`, string(result))
}

func TestMarshalCanonicalChineseText(t *testing.T) {
	result, err := MarshalCanonical("进程上下文（可睡眠）")
	require.NoError(t, err)
	assert.Equal(t, `"进程上下文（可睡眠）"`, string(result))
}

func TestMarshalCanonicalControlCharacters(t *testing.T) {
	result, err := MarshalCanonical("line1\nline2\tend")
	require.NoError(t, err)
	assert.Equal(t, `"line1\nline2\tend"`, string(result))
}

func TestMarshalCanonicalForbidden(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"null", nil},
		{"float64", 3.14},
		{"float32", float32(1.5)},
		{"unsupported type", struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarshalCanonical(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestCompareKeysRFC8785(t *testing.T) {
	// UTF-16 code unit order, not UTF-8 byte order: a character outside
	// the BMP encodes as surrogates that sort below U+FFFF.
	assert.Negative(t, compareKeysRFC8785("input", "instruction"))
	assert.Negative(t, compareKeysRFC8785("instruction", "metadata"))
	assert.Negative(t, compareKeysRFC8785("metadata", "output"))
	assert.Negative(t, compareKeysRFC8785("\U0001F600", "�"))
	assert.Zero(t, compareKeysRFC8785("same", "same"))
	assert.Positive(t, compareKeysRFC8785("ab", "a"))
}
