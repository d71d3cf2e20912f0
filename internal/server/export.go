package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plateworks/menugen/gen/ent"
	v1 "github.com/plateworks/menugen/gen/menugen/v1"
	"github.com/plateworks/menugen/internal/common"
)

// ExportBatch renders a batch manifest as an XLSX workbook.
func (s *MenuGenService) ExportBatch(ctx context.Context, req *v1.ExportBatchRequest) (*v1.ExportBatchResponse, error) {
	id := strings.TrimSpace(req.GetBatchId())
	batchID, err := uuid.Parse(id)
	if err != nil || id == "" {
		return nil, common.InvalidArgumentError("batch_id must be a UUID")
	}

	xlsx, err := s.exporter.ExportBatchXLSX(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("batch not found")
		}
		s.logger.Error("export batch failed", zap.String("batch_id", id), zap.Error(err))
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportBatchResponse{Xlsx: xlsx}, nil
}
