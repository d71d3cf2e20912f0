package server

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plateworks/menugen/gen/ent"
	v1 "github.com/plateworks/menugen/gen/menugen/v1"
	"github.com/plateworks/menugen/internal/common"
)

// GetBatch returns a recorded batch with its item outcomes in input order.
func (s *MenuGenService) GetBatch(ctx context.Context, req *v1.GetBatchRequest) (*v1.GetBatchResponse, error) {
	id := strings.TrimSpace(req.GetBatchId())
	batchID, err := uuid.Parse(id)
	if err != nil || id == "" {
		return nil, common.InvalidArgumentError("batch_id must be a UUID")
	}

	b, items, err := s.batches.GetWithItems(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("batch not found")
		}
		s.logger.Error("get batch failed", zap.String("batch_id", id), zap.Error(err))
		return nil, common.InternalError("get batch failed")
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	out := make([]*v1.BatchItem, 0, len(items))
	for _, it := range items {
		pb := &v1.BatchItem{
			Position:       int32(it.Position),
			Name:           it.Name,
			Status:         it.Status,
			FailureReason:  deref(it.FailureReason),
			FailureMessage: deref(it.FailureMessage),
			ImagePath:      deref(it.ImagePath),
		}
		if it.Width != nil {
			pb.Width = int32(*it.Width)
		}
		if it.Height != nil {
			pb.Height = int32(*it.Height)
		}
		out = append(out, pb)
	}

	return &v1.GetBatchResponse{Batch: toBatchPB(b), Items: out}, nil
}

func toBatchPB(b *ent.Batch) *v1.Batch {
	pb := &v1.Batch{
		Id:           b.ID.String(),
		Source:       b.Source,
		Status:       b.Status,
		Size:         b.Size,
		MaxItems:     int32(b.MaxItems),
		ParsedItems:  int32(b.ParsedItems),
		Attempted:    int32(b.Attempted),
		Truncated:    int32(b.Truncated),
		ErrorMessage: deref(b.ErrorMessage),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339Nano),
	}
	if b.OcrConfidence != nil {
		pb.OcrConfidence = *b.OcrConfidence
	}
	if b.FinishedAt != nil {
		pb.FinishedAt = b.FinishedAt.Format(time.RFC3339Nano)
	}
	return pb
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
