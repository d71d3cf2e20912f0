package pipeline

import (
	"context"
	"log/slog"

	"github.com/plateworks/menugen/internal/menu"
)

// Processor coordinates extract (image -> text), parse (text -> items), and
// the generation batch (items -> images).
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Parser  menu.Parser
	Batch   *BatchProcessor
}

func NewProcessor(logger *slog.Logger, ex *ExtractStage, parser menu.Parser, batch *BatchProcessor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: ex, Parser: parser, Batch: batch}
}

// Run is shared by the image and text entry points once raw text exists.
// Zero parsed items is a valid terminal state: the batch is skipped and an
// empty result returned, distinct from an extraction failure upstream.
func (p *Processor) Run(ctx context.Context, raw menu.RawText, cfg BatchConfig, progress ProgressFunc) ([]menu.Item, BatchResult, error) {
	items, err := p.Parser.Parse(ctx, raw)
	if err != nil {
		p.Logger.Error("processor.parse.failed", "source", string(raw.Source), "err", err)
		return nil, BatchResult{}, err
	}
	p.Logger.Info("processor.parse.ok",
		"source", string(raw.Source),
		"raw_len", len(raw.Text),
		"items", len(items),
	)
	if len(items) == 0 {
		return nil, BatchResult{}, nil
	}

	res := p.Batch.Process(ctx, items, cfg, progress)
	p.Logger.Info("processor.batch.ok",
		"attempted", res.Attempted,
		"truncated", res.Truncated,
	)
	return items, res, nil
}

// RunImage runs the full pipeline for a menu image on disk.
func (p *Processor) RunImage(ctx context.Context, path string, cfg BatchConfig, progress ProgressFunc) ([]menu.Item, BatchResult, error) {
	raw, _, err := p.Extract.Run(ctx, path)
	if err != nil {
		return nil, BatchResult{}, err
	}
	return p.Run(ctx, raw, cfg, progress)
}

// RunImageBytes runs the full pipeline for an uploaded menu image.
func (p *Processor) RunImageBytes(ctx context.Context, data []byte, ext string, cfg BatchConfig, progress ProgressFunc) ([]menu.Item, BatchResult, error) {
	raw, _, err := p.Extract.RunBytes(ctx, data, ext)
	if err != nil {
		return nil, BatchResult{}, err
	}
	return p.Run(ctx, raw, cfg, progress)
}

// RunText runs parse + batch for manually entered menu text.
func (p *Processor) RunText(ctx context.Context, text string, cfg BatchConfig, progress ProgressFunc) ([]menu.Item, BatchResult, error) {
	return p.Run(ctx, menu.RawText{Text: text, Source: menu.SourceManual}, cfg, progress)
}
