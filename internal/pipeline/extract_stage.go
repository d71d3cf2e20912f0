package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plateworks/menugen/internal/extract"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/ocr"
)

// ExtractStage wraps the OCR boundary and tags its output as OCR-sourced
// raw text. Extraction failures abort the request; there is nothing to
// parse without text.
type ExtractStage struct {
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewExtractStage(tx extract.TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{TextExtractor: tx, Logger: logger}
}

// Run extracts text from a menu image on disk.
func (s *ExtractStage) Run(ctx context.Context, path string) (menu.RawText, extract.TextExtractionResult, error) {
	res, err := s.TextExtractor.Extract(ctx, path)
	if err != nil {
		s.Logger.Error("pipeline.extract.failed", "path", path, "error", err)
		return menu.RawText{}, res, fmt.Errorf("extract text: %w", err)
	}
	s.logOK(path, res)
	return menu.RawText{Text: res.Text, Source: menu.SourceOCR}, res, nil
}

// RunBytes extracts text from an uploaded image held in memory.
func (s *ExtractStage) RunBytes(ctx context.Context, data []byte, ext string) (menu.RawText, extract.TextExtractionResult, error) {
	res, err := s.TextExtractor.ExtractBytes(ctx, data, ext)
	if err != nil {
		s.Logger.Error("pipeline.extract.failed", "bytes", len(data), "ext", ext, "error", err)
		return menu.RawText{}, res, fmt.Errorf("extract text: %w", err)
	}
	s.logOK("(upload)", res)
	return menu.RawText{Text: res.Text, Source: menu.SourceOCR}, res, nil
}

func (s *ExtractStage) logOK(path string, res extract.TextExtractionResult) {
	s.Logger.Info("pipeline.extract.ok",
		"path", path,
		"text_len", len(res.Text),
		"confidence", res.Confidence,
		"low_confidence", res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold,
	)
}
