// Package server exposes the menu image pipeline over gRPC.
package server

import (
	"strings"

	"go.uber.org/zap"

	"github.com/plateworks/menugen/constants"
	v1 "github.com/plateworks/menugen/gen/menugen/v1"
	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/export"
	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/repository"
	"github.com/plateworks/menugen/internal/runs"
)

type MenuGenService struct {
	v1.UnimplementedMenuGenServiceServer
	runs     *runs.Service
	proc     *pipeline.Processor
	batches  repository.BatchRepository
	exporter *export.Service
	logger   *zap.Logger
}

func NewMenuGenService(r *runs.Service, proc *pipeline.Processor, batches repository.BatchRepository, exporter *export.Service, logger *zap.Logger) *MenuGenService {
	return &MenuGenService{
		runs:     r,
		proc:     proc,
		batches:  batches,
		exporter: exporter,
		logger:   logger,
	}
}

// resolveSize maps the wire size string to an ImageSize, defaulting to medium.
func resolveSize(s string) (constants.ImageSize, error) {
	if strings.TrimSpace(s) == "" {
		return constants.SizeMedium, nil
	}
	size, ok := constants.ParseImageSize(s)
	if !ok {
		return "", common.InvalidArgumentErrorf("size must be one of small, medium, large: got %q", s)
	}
	return size, nil
}
