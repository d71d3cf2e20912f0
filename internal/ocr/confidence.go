package ocr

import (
	"regexp"
	"strings"
)

var (
	rePrice   = regexp.MustCompile(`\b\d{1,3}(\.\d{2})\b|[$£€]\s?\d+`)
	reSection = regexp.MustCompile(`\b(appetizer|starter|entree|main|dessert|drink|beverage|side|salad|soup|pizza|pasta|special)`)
	reLineish = regexp.MustCompile(`\n.+\n`)
)

func hasPricePattern(s string) bool  { return rePrice.MatchString(s) }
func hasSectionWord(s string) bool   { return reSection.MatchString(s) }
func hasMultipleLines(s string) bool { return reLineish.MatchString(s) }

// heuristicConfidence scores decoded text by how menu-like it looks.
// Price tokens, section words, and multi-line structure each add a bump.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasPricePattern(txtL) {
		score += 0.2
	}
	if hasSectionWord(txtL) {
		score += 0.15
	}
	if hasMultipleLines(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
