package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/gen/ent"
	"github.com/plateworks/menugen/gen/ent/batch"
)

// StartBatchRequest captures everything known about a run before items are
// attempted.
type StartBatchRequest struct {
	Source        string // "OCR" | "MANUAL"
	RawText       string
	ImagePath     string
	Size          constants.ImageSize
	MaxItems      int
	OCRConfidence float32
}

// FinishBatchRequest records the terminal accounting of a run.
type FinishBatchRequest struct {
	ParsedItems int
	Attempted   int
	Truncated   int
}

type BatchRepository interface {
	Start(ctx context.Context, req StartBatchRequest) (*ent.Batch, error)
	FinishSuccess(ctx context.Context, batchID uuid.UUID, req FinishBatchRequest) error
	FinishFailure(ctx context.Context, batchID uuid.UUID, message string) error
	GetWithItems(ctx context.Context, batchID uuid.UUID) (*ent.Batch, []*ent.BatchItem, error)
	ListRecent(ctx context.Context, limit int) ([]*ent.Batch, error)
}

type batchRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchRepository(entc *ent.Client, log *slog.Logger) BatchRepository {
	if log == nil {
		log = slog.Default()
	}
	return &batchRepo{ent: entc, log: log}
}

func (r *batchRepo) Start(ctx context.Context, req StartBatchRequest) (*ent.Batch, error) {
	create := r.ent.Batch.
		Create().
		SetSource(req.Source).
		SetRawText(req.RawText).
		SetSize(string(req.Size)).
		SetMaxItems(req.MaxItems).
		SetStatus(string(constants.BatchStatusRunning))
	if req.ImagePath != "" {
		create = create.SetImagePath(req.ImagePath)
	}
	if req.OCRConfidence > 0 {
		create = create.SetOcrConfidence(req.OCRConfidence)
	}
	b, err := create.Save(ctx)
	if err != nil {
		r.log.Error("batch start failed", "source", req.Source, "err", err)
		return nil, err
	}
	r.log.Info("batch started", "batch_id", b.ID, "source", req.Source, "size", string(req.Size))
	return b, nil
}

func (r *batchRepo) FinishSuccess(ctx context.Context, batchID uuid.UUID, req FinishBatchRequest) error {
	_, err := r.ent.Batch.
		UpdateOneID(batchID).
		SetStatus(string(constants.BatchStatusDone)).
		SetParsedItems(req.ParsedItems).
		SetAttempted(req.Attempted).
		SetTruncated(req.Truncated).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch finish(DONE) failed", "batch_id", batchID, "err", err)
		return err
	}
	r.log.Info("batch finished (DONE)", "batch_id", batchID, "attempted", req.Attempted, "truncated", req.Truncated)
	return nil
}

func (r *batchRepo) FinishFailure(ctx context.Context, batchID uuid.UUID, message string) error {
	_, err := r.ent.Batch.
		UpdateOneID(batchID).
		SetStatus(string(constants.BatchStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch finish(FAILED) failed", "batch_id", batchID, "err", err)
		return err
	}
	r.log.Warn("batch finished (FAILED)", "batch_id", batchID, "error", message)
	return nil
}

func (r *batchRepo) GetWithItems(ctx context.Context, batchID uuid.UUID) (*ent.Batch, []*ent.BatchItem, error) {
	b, err := r.ent.Batch.Get(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	items, err := b.QueryItems().All(ctx)
	if err != nil {
		return nil, nil, err
	}
	return b, items, nil
}

func (r *batchRepo) ListRecent(ctx context.Context, limit int) ([]*ent.Batch, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.ent.Batch.
		Query().
		Order(ent.Desc(batch.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
