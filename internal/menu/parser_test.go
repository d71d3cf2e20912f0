package menu

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextStripsPricesAndBlankLines(t *testing.T) {
	got := ParseText("Margherita Pizza $12.99\nCaesar Salad 8.50\n\n")
	require.Equal(t, []Item{"Margherita Pizza", "Caesar Salad"}, got)
}

func TestParseTextEmptyInput(t *testing.T) {
	assert.Empty(t, ParseText(""))
	assert.Empty(t, ParseText("\n\n\n"))
}

func TestParseTextDropsNoiseLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Item
	}{
		{
			name: "pure price lines",
			in:   "12.99\n$8\n7,50\n",
			want: nil,
		},
		{
			name: "rules and leaders",
			in:   "------\nTikka Masala\n........\n",
			want: []Item{"Tikka Masala"},
		},
		{
			name: "section header with colon",
			in:   "Appetizers:\nSpring Rolls 4.50\n",
			want: []Item{"Spring Rolls"},
		},
		{
			name: "currency symbol with no item name",
			in:   "$\nPad Thai $11.00\n",
			want: []Item{"Pad Thai"},
		},
		{
			name: "single character noise",
			in:   "x\n| \nRamen 9.75\n",
			want: []Item{"Ramen"},
		},
		{
			name: "dotted leader between name and price",
			in:   "Lobster Bisque ...... 14.25\n",
			want: []Item{"Lobster Bisque"},
		},
		{
			name: "euro price with comma decimals",
			in:   "Bratwurst €8,50\n",
			want: []Item{"Bratwurst"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseText(tt.in))
		})
	}
}

func TestParseTextPreservesOrderAndDuplicates(t *testing.T) {
	got := ParseText("Miso Soup 3.00\nGyoza 6.00\nMiso Soup 3.00\n")
	require.Equal(t, []Item{"Miso Soup", "Gyoza", "Miso Soup"}, got)
}

func TestParseTextCollapsesInternalWhitespace(t *testing.T) {
	got := ParseText("Chicken    Tikka\t\tMasala   13.99\n")
	require.Equal(t, []Item{"Chicken Tikka Masala"}, got)
}

func TestParseTextNeverReturnsEmptyOrPriceOnlyItems(t *testing.T) {
	inputs := []string{
		"Margherita Pizza $12.99\n12.99\n  \n$\n...\n",
		"9.99\n$9.99\n£3\n",
		"a\nab\nabc 1.50\n",
		"WEEKEND SPECIALS:\n$5 $6 $7\n",
	}
	for _, in := range inputs {
		for _, it := range ParseText(in) {
			name := it.String()
			assert.GreaterOrEqual(t, utf8.RuneCountInString(name), MinItemLength, "input %q produced %q", in, name)
			assert.NotEqual(t, "", strings.TrimSpace(name))
			assert.False(t, reNumericLine.MatchString(name), "price-only item %q from %q", name, in)
		}
	}
}

func TestHeuristicParserImplementsParser(t *testing.T) {
	var p Parser = NewHeuristicParser()
	items, err := p.Parse(context.Background(), RawText{Text: "Falafel Wrap 7.25", Source: SourceManual})
	require.NoError(t, err)
	require.Equal(t, []Item{"Falafel Wrap"}, items)
}
