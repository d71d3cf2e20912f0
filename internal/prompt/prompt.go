// Package prompt derives image-generation prompts from menu items.
package prompt

import (
	"strings"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/menu"
)

// preamble is the fixed photography-style lead-in for every prompt.
const preamble = "professional food photography, appetizing, restaurant menu style, " +
	"high resolution, studio lighting, fresh and inviting presentation of: "

// styleHints maps a size class to a composition hint. Smaller renders lose
// fine detail, so the hint shifts toward simpler framing.
var styleHints = map[constants.ImageSize]string{
	constants.SizeSmall:  "simple close-up composition",
	constants.SizeMedium: "balanced plate composition with shallow depth of field",
	constants.SizeLarge:  "full table setting with garnish detail and natural shadows",
}

// Build returns the prompt for one menu item. Pure and deterministic:
// the same item and size always produce the same prompt. The parser
// guarantees items are non-empty.
func Build(item menu.Item, size constants.ImageSize) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(item.String())
	b.WriteString(". ")
	hint, ok := styleHints[size]
	if !ok {
		hint = styleHints[constants.SizeMedium]
	}
	b.WriteString(hint)
	return b.String()
}
