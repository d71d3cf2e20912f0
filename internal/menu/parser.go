package menu

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinItemLength is the shortest cleaned line kept as an item; anything
// shorter is treated as OCR noise.
const MinItemLength = 2

var (
	// currency-anchored price anywhere in a line, e.g. "$12.99", "€ 8,50"
	reCurrencyPrice = regexp.MustCompile(`[$£€¥₹]\s*\d+(?:[.,]\d{1,2})?`)
	// bare decimal price anchored at line end, e.g. "8.50"
	reTrailingPrice = regexp.MustCompile(`(?:[$£€¥₹]\s*\d+(?:[.,]\d{1,2})?|\d+[.,]\d{1,2})\s*$`)
	// whole line is numbers, prices, or separator punctuation
	reNumericLine = regexp.MustCompile(`^[\s\d$£€¥₹.,/\-–—]+$`)
	// dotted leaders / rules, e.g. "......", "-----", "====="
	reRuleLine = regexp.MustCompile(`^[\s.\-–—_=*~•·]+$`)
	// section header: short label ending with a colon, e.g. "Appetizers:"
	reHeaderLine = regexp.MustCompile(`^[^\d]{1,32}:$`)
	// internal whitespace runs
	reSpaces = regexp.MustCompile(`\s+`)
)

// HeuristicParser is the default, rule-based menu parser. It is pure and
// never fails; noisy OCR input degrades to fewer (or zero) items.
type HeuristicParser struct{}

func NewHeuristicParser() *HeuristicParser { return &HeuristicParser{} }

func (*HeuristicParser) Parse(_ context.Context, raw RawText) ([]Item, error) {
	return ParseText(raw.Text), nil
}

// ParseText splits raw menu text into cleaned item names, one per line,
// preserving line order. Lines that are empty, pure numeric/price tokens,
// rules, or section headers are dropped; trailing price fragments are
// stripped from the rest.
func ParseText(text string) []Item {
	var items []Item
	for _, line := range strings.Split(text, "\n") {
		if name, ok := cleanLine(line); ok {
			items = append(items, Item(name))
		}
	}
	return items
}

func cleanLine(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", false
	}
	if reNumericLine.MatchString(s) || reRuleLine.MatchString(s) || reHeaderLine.MatchString(s) {
		return "", false
	}

	// Strip price fragments: currency-anchored anywhere, then bare
	// decimals at line end (repeat for stacked fragments like "7.50 / 28.00").
	s = reCurrencyPrice.ReplaceAllString(s, "")
	for {
		t := reTrailingPrice.ReplaceAllString(s, "")
		t = strings.TrimRight(t, " .-–—•·:/\t")
		if t == s {
			break
		}
		s = t
	}

	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .-–—•·:")
	if utf8.RuneCountInString(s) < MinItemLength {
		return "", false
	}
	return s, true
}
