package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/plateworks/menugen/internal/repository"
)

// Service is a tiny façade over the batch repository that produces XLSX
// manifests for completed runs.
type Service struct {
	batches repository.BatchRepository
	logger  *slog.Logger
}

func NewService(batches repository.BatchRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{batches: batches, logger: logger}
}

// ExportBatchXLSX returns an XLSX workbook (as bytes) listing every attempted
// item of a batch with its outcome.
func (s *Service) ExportBatchXLSX(ctx context.Context, batchID uuid.UUID) ([]byte, error) {
	start := time.Now()

	b, items, err := s.batches.GetWithItems(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("query batch: %w", err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	f := excelize.NewFile()
	const sheet = "Batch"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"#",
		"Menu Item",
		"Status",
		"Failure Reason",
		"Failure Message",
		"Image Path",
		"Size",
		"Prompt",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, it.Position+1)
		write(2, it.Name)
		write(3, it.Status)
		write(4, strOrEmpty(it.FailureReason))
		write(5, truncate(strOrEmpty(it.FailureMessage), 140))
		write(6, strOrEmpty(it.ImagePath))
		if it.Width != nil && it.Height != nil {
			write(7, fmt.Sprintf("%dx%d", *it.Width, *it.Height))
		} else {
			write(7, "")
		}
		write(8, truncate(it.Prompt, 200))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 4)  // position
	_ = f.SetColWidth(sheet, "B", "B", 32) // item
	_ = f.SetColWidth(sheet, "C", "D", 18) // status / reason
	_ = f.SetColWidth(sheet, "E", "E", 40) // message
	_ = f.SetColWidth(sheet, "F", "F", 48) // path
	_ = f.SetColWidth(sheet, "H", "H", 64) // prompt

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batchID.String(),
		"status", b.Status,
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
