package server

import (
	"context"
	"strings"

	"go.uber.org/zap"

	v1 "github.com/plateworks/menugen/gen/menugen/v1"
	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/menu"
)

// ParseMenu extracts and parses menu items without generating any images.
// Zero parsed items is a successful response with an empty list.
func (s *MenuGenService) ParseMenu(ctx context.Context, req *v1.ParseMenuRequest) (*v1.ParseMenuResponse, error) {
	var (
		raw        menu.RawText
		confidence float32
	)

	switch in := req.GetInput().(type) {
	case *v1.ParseMenuRequest_Text:
		if strings.TrimSpace(in.Text) == "" {
			return nil, common.InvalidArgumentError("text must not be empty")
		}
		raw = menu.RawText{Text: in.Text, Source: menu.SourceManual}
	case *v1.ParseMenuRequest_Image:
		if len(in.Image) == 0 {
			return nil, common.InvalidArgumentError("image must not be empty")
		}
		r, res, err := s.proc.Extract.RunBytes(ctx, in.Image, req.GetImageExt())
		if err != nil {
			s.logger.Warn("parse: extraction failed", zap.Error(err))
			return nil, extractionStatus(err)
		}
		raw = r
		confidence = res.Confidence
	default:
		return nil, common.InvalidArgumentError("either text or image is required")
	}

	items, err := s.proc.Parser.Parse(ctx, raw)
	if err != nil {
		s.logger.Error("parse: parser failed", zap.Error(err))
		return nil, common.InternalError("menu parsing failed")
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return &v1.ParseMenuResponse{
		Items:         out,
		RawText:       raw.Text,
		OcrConfidence: confidence,
	}, nil
}
