// Package genimage defines the boundary to the hosted image-generation API.
package genimage

import (
	"context"
	"fmt"

	"github.com/plateworks/menugen/constants"
)

// Image is a decoded, RGB-normalized generated image.
type Image struct {
	Data   []byte // PNG-encoded
	Width  int
	Height int
}

// GenerationError carries the machine-readable failure category surfaced to
// the batch processor. The client makes a single attempt; retry policy, if
// any, belongs to the caller so per-item accounting stays correct.
type GenerationError struct {
	Reason  constants.FailureReason
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// Generator issues one synchronous image-generation request per prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, size constants.ImageSize) (Image, error)
}
