package llm

import "context"

// ExtractRequest carries raw menu text to the model along with parsing hints.
type ExtractRequest struct {
	RawText  string
	Source   string // "OCR" | "MANUAL"
	MaxItems int    // soft cap hint; hard truncation stays in the batch processor
}

// MenuItems is the normalized shape we want from the LLM.
type MenuItems struct {
	Items []string `json:"items"`
}

// ItemExtractor turns noisy menu text into clean item names. Implementations
// return the raw model JSON alongside the parsed result for audit logging.
type ItemExtractor interface {
	ExtractItems(ctx context.Context, req ExtractRequest) (MenuItems, []byte /*rawJSON*/, error)
}
