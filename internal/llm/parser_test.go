package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/internal/menu"
)

type fakeExtractor struct {
	out MenuItems
	err error
}

func (f fakeExtractor) ExtractItems(context.Context, ExtractRequest) (MenuItems, []byte, error) {
	return f.out, nil, f.err
}

func TestParserFiltersModelOutput(t *testing.T) {
	p := NewParser(fakeExtractor{out: MenuItems{Items: []string{
		"Margherita  Pizza", // internal whitespace collapsed
		"",                  // dropped
		"x",                 // too short, dropped
		"Caesar Salad",
	}}}, nil)

	items, err := p.Parse(context.Background(), menu.RawText{Text: "whatever", Source: menu.SourceOCR})
	require.NoError(t, err)
	assert.Equal(t, []menu.Item{"Margherita Pizza", "Caesar Salad"}, items)
}

func TestParserEmptyInputShortCircuits(t *testing.T) {
	p := NewParser(fakeExtractor{err: errors.New("should not be called")}, nil)
	items, err := p.Parse(context.Background(), menu.RawText{Text: "   \n ", Source: menu.SourceManual})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParserPropagatesExtractorError(t *testing.T) {
	p := NewParser(fakeExtractor{err: errors.New("model down")}, nil)
	_, err := p.Parse(context.Background(), menu.RawText{Text: "Pizza", Source: menu.SourceManual})
	require.Error(t, err)
}

func TestMenuItemsSchemaValidation(t *testing.T) {
	schema := BuildMenuItemsJSONSchema()

	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"items":["Pad Thai","Ramen"]}`)))
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"items":[]}`)))

	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"items":["a"]}`)), "one-char items violate minLength")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"items":[42]}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"dishes":["Ramen"]}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`not json`)))
}
