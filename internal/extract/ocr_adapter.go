package extract

import (
	"context"

	"github.com/plateworks/menugen/internal/ocr"
)

type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return toResult(r), err
}

func (a *OCRAdapter) ExtractBytes(ctx context.Context, data []byte, ext string) (TextExtractionResult, error) {
	r, err := a.e.ExtractBytes(ctx, data, ext)
	return toResult(r), err
}

func toResult(r ocr.Result) TextExtractionResult {
	return TextExtractionResult{
		Text:       r.Text,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}
}
