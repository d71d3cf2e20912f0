package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/gen/ent"
)

// ItemOutcome describes one attempted item for persistence.
type ItemOutcome struct {
	Position       int
	Name           string
	Prompt         string
	Status         constants.ItemStatus
	FailureReason  constants.FailureReason
	FailureMessage string
	ImagePath      string
	Width          int
	Height         int
}

type BatchItemRepository interface {
	RecordOutcomes(ctx context.Context, batchID uuid.UUID, outcomes []ItemOutcome) error
}

type batchItemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchItemRepository(entc *ent.Client, log *slog.Logger) BatchItemRepository {
	if log == nil {
		log = slog.Default()
	}
	return &batchItemRepo{ent: entc, log: log}
}

func (r *batchItemRepo) RecordOutcomes(ctx context.Context, batchID uuid.UUID, outcomes []ItemOutcome) error {
	builders := make([]*ent.BatchItemCreate, 0, len(outcomes))
	for _, o := range outcomes {
		create := r.ent.BatchItem.
			Create().
			SetBatchID(batchID).
			SetPosition(o.Position).
			SetName(o.Name).
			SetPrompt(o.Prompt).
			SetStatus(string(o.Status))
		if o.Status == constants.ItemStatusFailed {
			create = create.
				SetFailureReason(string(o.FailureReason)).
				SetFailureMessage(o.FailureMessage)
		} else {
			if o.ImagePath != "" {
				create = create.SetImagePath(o.ImagePath)
			}
			create = create.SetWidth(o.Width).SetHeight(o.Height)
		}
		builders = append(builders, create)
	}
	if _, err := r.ent.BatchItem.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("batch_item record failed", "batch_id", batchID, "count", len(outcomes), "err", err)
		return err
	}
	r.log.Info("batch_item outcomes recorded", "batch_id", batchID, "count", len(outcomes))
	return nil
}
