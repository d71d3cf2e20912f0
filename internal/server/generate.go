package server

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/plateworks/menugen/constants"
	v1 "github.com/plateworks/menugen/gen/menugen/v1"
	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/ocr"
	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/runs"
)

// GenerateBatch runs the full pipeline for one menu and streams progress
// updates while items are attempted, then one ItemResult per attempted item
// and a final summary. A single item's generation failure is reported in its
// ItemResult and never fails the stream.
func (s *MenuGenService) GenerateBatch(req *v1.GenerateBatchRequest, stream v1.MenuGenService_GenerateBatchServer) error {
	ctx := stream.Context()

	size, err := resolveSize(req.GetSize())
	if err != nil {
		return err
	}

	runReq := runs.Request{
		Config: pipeline.BatchConfig{
			MaxItems: int(req.GetMaxItems()),
			Size:     size,
		},
	}
	switch in := req.GetInput().(type) {
	case *v1.GenerateBatchRequest_Text:
		if strings.TrimSpace(in.Text) == "" {
			return common.InvalidArgumentError("text must not be empty")
		}
		runReq.Text = in.Text
	case *v1.GenerateBatchRequest_Image:
		if len(in.Image) == 0 {
			return common.InvalidArgumentError("image must not be empty")
		}
		runReq.ImageData = in.Image
		runReq.ImageExt = req.GetImageExt()
	default:
		return common.InvalidArgumentError("either text or image is required")
	}

	var sendErr error
	runReq.Progress = func(completed, total int) {
		if sendErr != nil {
			return
		}
		sendErr = stream.Send(&v1.GenerateBatchUpdate{
			Update: &v1.GenerateBatchUpdate_Progress{
				Progress: &v1.Progress{
					Completed: int32(completed),
					Total:     int32(total),
				},
			},
		})
	}

	out, err := s.runs.Run(ctx, runReq)
	if err != nil {
		s.logger.Warn("generate batch failed", zap.Error(err))
		if errors.Is(err, ocr.ErrNoText) || errors.Is(err, ocr.ErrUndecodable) {
			return extractionStatus(err)
		}
		return common.InternalError("batch run failed")
	}
	if sendErr != nil {
		return sendErr
	}

	for i, r := range out.Result.Items {
		item := &v1.ItemResult{
			Position: int32(i),
			Name:     r.Item.String(),
		}
		if r.Err != nil {
			item.Status = string(constants.ItemStatusFailed)
			item.FailureReason = string(r.Err.Reason)
			item.FailureMessage = r.Err.Message
		} else {
			item.Status = string(constants.ItemStatusOK)
			item.ImagePng = r.Image.Data
			item.Width = int32(r.Image.Width)
			item.Height = int32(r.Image.Height)
		}
		if err := stream.Send(&v1.GenerateBatchUpdate{
			Update: &v1.GenerateBatchUpdate_Item{Item: item},
		}); err != nil {
			return err
		}
	}

	return stream.Send(&v1.GenerateBatchUpdate{
		Update: &v1.GenerateBatchUpdate_Summary{
			Summary: &v1.BatchSummary{
				BatchId:     out.BatchID.String(),
				ParsedItems: int32(len(out.Items)),
				Attempted:   int32(out.Result.Attempted),
				Truncated:   int32(out.Result.Truncated),
			},
		},
	})
}
