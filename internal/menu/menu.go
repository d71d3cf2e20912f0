package menu

import "context"

// Source tags where raw menu text came from.
type Source string

const (
	SourceOCR    Source = "OCR"
	SourceManual Source = "MANUAL"
)

// RawText is one user submission of menu text, produced once and consumed by a Parser.
type RawText struct {
	Text   string
	Source Source
}

// Item is a cleaned, non-empty dish name. Order of first appearance is
// preserved and duplicates are kept.
type Item string

func (i Item) String() string { return string(i) }

// Parser turns raw menu text into an ordered list of items.
// An empty result is a valid terminal state, not an error.
type Parser interface {
	Parse(ctx context.Context, raw RawText) ([]Item, error)
}
