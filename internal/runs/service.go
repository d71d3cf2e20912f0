// Package runs wraps the core pipeline with batch-history bookkeeping for
// the serving layer. The pipeline itself stays stateless; this is the only
// place run outcomes are persisted.
package runs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/repository"
)

type Service struct {
	Logger    *slog.Logger
	Processor *pipeline.Processor
	Batches   repository.BatchRepository
	Items     repository.BatchItemRepository
	ImageDir  string
}

func NewService(logger *slog.Logger, proc *pipeline.Processor, batches repository.BatchRepository, items repository.BatchItemRepository, imageDir string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if imageDir == "" {
		imageDir = "./images"
	}
	return &Service{Logger: logger, Processor: proc, Batches: batches, Items: items, ImageDir: imageDir}
}

// Request describes one generation run. Exactly one of ImagePath, ImageData,
// and Text should be set.
type Request struct {
	ImagePath string
	ImageData []byte
	ImageExt  string
	Text      string

	Config   pipeline.BatchConfig
	Progress pipeline.ProgressFunc
}

// Outcome is the recorded result of a run.
type Outcome struct {
	BatchID   uuid.UUID
	Items     []menu.Item
	Result    pipeline.BatchResult
	ImagePath map[int]string // position -> stored PNG path
}

// Run executes the pipeline for one request and records the batch. An
// extraction failure aborts the run and is stored as a FAILED batch; a
// parse that finds zero items completes normally with zero attempted.
func (s *Service) Run(ctx context.Context, req Request) (Outcome, error) {
	if req.Config.MaxItems <= 0 {
		req.Config.MaxItems = pipeline.DefaultMaxItems
	}
	if req.Config.Size == "" {
		req.Config.Size = constants.SizeMedium
	}

	raw, conf, source, err := s.resolveText(ctx, req)
	if err != nil {
		s.recordExtractionFailure(ctx, req, source, err)
		return Outcome{}, err
	}

	b, err := s.Batches.Start(ctx, repository.StartBatchRequest{
		Source:        string(source),
		RawText:       raw.Text,
		ImagePath:     req.ImagePath,
		Size:          req.Config.Size,
		MaxItems:      req.Config.MaxItems,
		OCRConfidence: conf,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("start batch: %w", err)
	}

	items, res, err := s.Processor.Run(ctx, raw, req.Config, req.Progress)
	if err != nil {
		_ = s.Batches.FinishFailure(ctx, b.ID, err.Error())
		return Outcome{BatchID: b.ID}, err
	}

	paths, outcomes := s.buildOutcomes(b.ID, res)
	if len(outcomes) > 0 {
		if err := s.Items.RecordOutcomes(ctx, b.ID, outcomes); err != nil {
			_ = s.Batches.FinishFailure(ctx, b.ID, err.Error())
			return Outcome{BatchID: b.ID}, err
		}
	}

	if err := s.Batches.FinishSuccess(ctx, b.ID, repository.FinishBatchRequest{
		ParsedItems: len(items),
		Attempted:   res.Attempted,
		Truncated:   res.Truncated,
	}); err != nil {
		return Outcome{BatchID: b.ID}, err
	}

	return Outcome{BatchID: b.ID, Items: items, Result: res, ImagePath: paths}, nil
}

func (s *Service) resolveText(ctx context.Context, req Request) (menu.RawText, float32, menu.Source, error) {
	switch {
	case req.ImagePath != "":
		raw, res, err := s.Processor.Extract.Run(ctx, req.ImagePath)
		return raw, res.Confidence, menu.SourceOCR, err
	case len(req.ImageData) > 0:
		raw, res, err := s.Processor.Extract.RunBytes(ctx, req.ImageData, req.ImageExt)
		return raw, res.Confidence, menu.SourceOCR, err
	default:
		return menu.RawText{Text: req.Text, Source: menu.SourceManual}, 0, menu.SourceManual, nil
	}
}

func (s *Service) recordExtractionFailure(ctx context.Context, req Request, source menu.Source, cause error) {
	b, err := s.Batches.Start(ctx, repository.StartBatchRequest{
		Source:    string(source),
		RawText:   "",
		ImagePath: req.ImagePath,
		Size:      req.Config.Size,
		MaxItems:  req.Config.MaxItems,
	})
	if err != nil {
		s.Logger.Error("runs.record_failure.start_failed", "error", err)
		return
	}
	_ = s.Batches.FinishFailure(ctx, b.ID, cause.Error())
}

// buildOutcomes writes successful images under ImageDir/<batchID>/ and maps
// every pipeline result to a persistence row.
func (s *Service) buildOutcomes(batchID uuid.UUID, res pipeline.BatchResult) (map[int]string, []repository.ItemOutcome) {
	paths := make(map[int]string)
	outcomes := make([]repository.ItemOutcome, 0, len(res.Items))
	dir := filepath.Join(s.ImageDir, batchID.String())

	for i, r := range res.Items {
		o := repository.ItemOutcome{
			Position: i,
			Name:     r.Item.String(),
			Prompt:   r.Prompt,
		}
		if r.Err != nil {
			o.Status = constants.ItemStatusFailed
			o.FailureReason = r.Err.Reason
			o.FailureMessage = r.Err.Message
		} else {
			o.Status = constants.ItemStatusOK
			o.Width = r.Image.Width
			o.Height = r.Image.Height
			if p, err := s.saveImage(dir, i, r.Image.Data); err != nil {
				s.Logger.Warn("runs.image.save_failed", "batch_id", batchID, "position", i, "error", err)
			} else {
				o.ImagePath = p
				paths[i] = p
			}
		}
		outcomes = append(outcomes, o)
	}
	return paths, outcomes
}

func (s *Service) saveImage(dir string, position int, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("item-%02d.png", position))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
