package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: menu image -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
	ExtractBytes(ctx context.Context, data []byte, ext string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}
