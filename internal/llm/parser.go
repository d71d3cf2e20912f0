package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/plateworks/menugen/internal/menu"
)

// Parser adapts an ItemExtractor to the menu.Parser interface, so callers
// can swap the heuristic parser for a model-backed one when OCR output is
// too mangled for line rules.
type Parser struct {
	extractor ItemExtractor
	logger    *slog.Logger
}

func NewParser(e ItemExtractor, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{extractor: e, logger: logger}
}

func (p *Parser) Parse(ctx context.Context, raw menu.RawText) ([]menu.Item, error) {
	if strings.TrimSpace(raw.Text) == "" {
		return nil, nil
	}

	out, _, err := p.extractor.ExtractItems(ctx, ExtractRequest{
		RawText: raw.Text,
		Source:  string(raw.Source),
	})
	if err != nil {
		return nil, fmt.Errorf("llm parse: %w", err)
	}

	// Re-apply the parser invariants locally: items stay non-empty,
	// whitespace-collapsed, and in model order. The model is not trusted
	// to honor them.
	var items []menu.Item
	for _, s := range out.Items {
		s = strings.Join(strings.Fields(s), " ")
		if utf8.RuneCountInString(s) < menu.MinItemLength {
			continue
		}
		items = append(items, menu.Item(s))
	}
	p.logger.Info("llm.parse.ok", "raw_len", len(raw.Text), "items", len(items))
	return items, nil
}
