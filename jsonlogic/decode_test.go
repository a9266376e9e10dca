package jsonlogic

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONKeepsNumbers(t *testing.T) {
	value, err := Decode(strings.NewReader(`{"+": [1, 2.5]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"+": []any{json.Number("1"), json.Number("2.5")}}, value)
}

func TestDecodeYAML(t *testing.T) {
	src := `
if:
  - var: cond
  - 1
  - null
`
	value, err := Decode(strings.NewReader(src), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"if": []any{map[string]any{"var": "cond"}, 1, nil}}, value)

	result, err := TypeCheck(value)
	require.NoError(t, err)
	assert.Equal(t, "Either Number Null", result.Type.String())
}

func TestDecodeAuto(t *testing.T) {
	value, err := Decode(strings.NewReader(`{"cat": ["a", "b"]}`), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"cat": []any{"a", "b"}}, value)

	value, err = Decode(strings.NewReader("cat: [a, b]\n"), "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"cat": []any{"a", "b"}}, value)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"+": [1`), FormatJSON)
	assert.ErrorContains(t, err, "could not decode JSON rule")

	_, err = Decode(strings.NewReader("a: [b"), FormatYAML)
	assert.ErrorContains(t, err, "could not decode YAML rule")

	_, err = Decode(strings.NewReader("1"), "toml")
	assert.ErrorContains(t, err, "unknown rule format")
}
