package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/genimage"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/prompt"
)

// DefaultMaxItems caps a batch when the caller does not supply a positive limit.
const DefaultMaxItems = 5

// BatchConfig is immutable for the duration of one batch run.
type BatchConfig struct {
	MaxItems int
	Size     constants.ImageSize
}

// ProgressFunc is invoked once per attempted item with (completed, total).
type ProgressFunc func(completed, total int)

// ItemResult is the per-item outcome. Exactly one of Image and Err is set.
type ItemResult struct {
	Item   menu.Item
	Prompt string
	Image  *genimage.Image
	Err    *genimage.GenerationError
}

// BatchResult is the terminal state of one batch run. Items holds one result
// per attempted item, in input order; Truncated counts items dropped by the
// MaxItems cap and is reported here once, never per item.
type BatchResult struct {
	Items     []ItemResult
	Attempted int
	Truncated int
}

// BatchProcessor runs items through prompt building and image generation,
// strictly in order, one request at a time. Sequential on purpose: it keeps
// progress exact and avoids tripping API rate limits with fan-out.
type BatchProcessor struct {
	Logger    *slog.Logger
	Generator genimage.Generator
}

func NewBatchProcessor(gen genimage.Generator, logger *slog.Logger) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchProcessor{Logger: logger, Generator: gen}
}

// Process attempts every item up to the cap. One item's failure never aborts
// the batch; it is recorded in that item's result and the loop continues.
// Stateless relative to prior calls.
func (b *BatchProcessor) Process(ctx context.Context, items []menu.Item, cfg BatchConfig, progress ProgressFunc) BatchResult {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	if cfg.Size == "" {
		cfg.Size = constants.SizeMedium
	}

	truncated := 0
	if len(items) > cfg.MaxItems {
		truncated = len(items) - cfg.MaxItems
		items = items[:cfg.MaxItems]
		b.Logger.Info("batch.truncated", "attempting", len(items), "dropped", truncated)
	}

	total := len(items)
	results := make([]ItemResult, 0, total)
	for i, item := range items {
		p := prompt.Build(item, cfg.Size)
		res := ItemResult{Item: item, Prompt: p}

		img, err := b.Generator.Generate(ctx, p, cfg.Size)
		if err != nil {
			res.Err = asGenerationError(err)
			b.Logger.Warn("batch.item.failed",
				"item", item.String(),
				"reason", string(res.Err.Reason),
				"error", res.Err.Message,
			)
		} else {
			res.Image = &img
			b.Logger.Info("batch.item.ok",
				"item", item.String(),
				"width", img.Width, "height", img.Height,
			)
		}

		results = append(results, res)
		if progress != nil {
			progress(i+1, total)
		}
	}

	b.Logger.Info("batch.done", "attempted", total, "truncated", truncated)
	return BatchResult{Items: results, Attempted: total, Truncated: truncated}
}

// asGenerationError keeps the failure taxonomy closed: anything a generator
// returns that is not already categorized counts as a transient fault.
func asGenerationError(err error) *genimage.GenerationError {
	var genErr *genimage.GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return &genimage.GenerationError{
		Reason:  constants.ReasonTransientNetwork,
		Message: err.Error(),
	}
}
