package chef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject_PlainObject(t *testing.T) {
	span, ok := extractJSONObject(`{"title":"Плов"}`)

	require.True(t, ok)
	assert.Equal(t, `{"title":"Плов"}`, span)
}

func TestExtractJSONObject_SurroundingProse(t *testing.T) {
	raw := `Here is your recipe: {"title":"Плов","cookTime":40} Enjoy!`

	span, ok := extractJSONObject(raw)

	require.True(t, ok)
	assert.Equal(t, `{"title":"Плов","cookTime":40}`, span)
}

func TestExtractJSONObject_BraceInsideString(t *testing.T) {
	raw := `Note: {"title":"Stew {spicy}","note":"ends with }"} trailing`

	span, ok := extractJSONObject(raw)

	require.True(t, ok)
	assert.Equal(t, `{"title":"Stew {spicy}","note":"ends with }"}`, span)
}

func TestExtractJSONObject_EscapedQuoteInsideString(t *testing.T) {
	raw := `{"title":"He said \"done\"","n":1} rest`

	span, ok := extractJSONObject(raw)

	require.True(t, ok)
	assert.Equal(t, `{"title":"He said \"done\"","n":1}`, span)
}

func TestExtractJSONObject_NestedObjects(t *testing.T) {
	raw := `prefix {"a":{"b":{"c":1}},"d":[{"e":2}]} suffix {"second":true}`

	span, ok := extractJSONObject(raw)

	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":{"c":1}},"d":[{"e":2}]}`, span)
}

func TestExtractJSONObject_MarkdownFence(t *testing.T) {
	raw := "Sure!\n```json\n{\"title\":\"Суп\"}\n```\n"

	span, ok := extractJSONObject(raw)

	require.True(t, ok)
	assert.Equal(t, `{"title":"Суп"}`, span)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, ok := extractJSONObject("I could not produce a recipe, sorry.")

	assert.False(t, ok)
}

func TestExtractJSONObject_UnterminatedObject(t *testing.T) {
	_, ok := extractJSONObject(`{"title":"cut off`)

	assert.False(t, ok)
}

func TestExtractJSONArray_ObjectElementsWithBraces(t *testing.T) {
	raw := `Products: [{"name":"Milk"},{"name":"Braces }{ inside"}] done`

	span, ok := extractJSONArray(raw)

	require.True(t, ok)
	assert.Equal(t, `[{"name":"Milk"},{"name":"Braces }{ inside"}]`, span)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, ok := extractJSONArray(`{"name":"object only"}`)

	assert.False(t, ok)
}
