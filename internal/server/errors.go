package server

import (
	"errors"

	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/ocr"
)

// extractionStatus maps OCR-stage failures onto gRPC status codes. A blank or
// undecodable upload is the caller's problem; anything else is ours.
func extractionStatus(err error) error {
	switch {
	case errors.Is(err, ocr.ErrNoText):
		return common.InvalidArgumentError("no text could be recognized in the image")
	case errors.Is(err, ocr.ErrUndecodable):
		return common.InvalidArgumentError("image could not be decoded")
	default:
		return common.InternalError("text extraction failed")
	}
}
