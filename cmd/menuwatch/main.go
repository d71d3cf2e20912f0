// menuwatch watches drop folders for new menu photos and runs the generation
// pipeline on each one, recording batches in the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/extract"
	"github.com/plateworks/menugen/internal/genimage/imagen"
	"github.com/plateworks/menugen/internal/ingest"
	"github.com/plateworks/menugen/internal/llm"
	"github.com/plateworks/menugen/internal/llm/openai"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/ocr"
	"github.com/plateworks/menugen/internal/pipeline"
	repo "github.com/plateworks/menugen/internal/repository"
	"github.com/plateworks/menugen/internal/runs"
)

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite instead of DB_URL")
		scan     = flag.Bool("scan", false, "process images already present in the watched directories")
		debounce = flag.Duration("debounce", 500*time.Millisecond, "coalesce rapid file events")
	)
	flag.Parse()

	_ = godotenv.Load()

	roots := flag.Args()
	if len(roots) == 0 {
		fmt.Fprintln(os.Stderr, "usage: menuwatch [flags] DIR [DIR...]")
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	batches := repo.NewBatchRepository(dbResult.Client, logger)
	items := repo.NewBatchItemRepository(dbResult.Client, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		HeicConverter:       cfg.OCR.HeicConverter,
		EnableTSVConfidence: true,
	}, logger)
	stage := pipeline.NewExtractStage(extract.NewOCRAdapter(extractor), logger)

	var parser menu.Parser = menu.NewHeuristicParser()
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		client := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		parser = llm.NewParser(client, logger)
	}

	gen := imagen.NewClient(imagen.Config{
		APIKey:  cfg.Imagen.APIKey,
		BaseURL: cfg.Imagen.BaseURL,
		Model:   cfg.Imagen.Model,
		Timeout: cfg.Imagen.Timeout,
	}, logger)
	proc := pipeline.NewProcessor(logger, stage, parser, pipeline.NewBatchProcessor(gen, logger))
	runSvc := runs.NewService(logger, proc, batches, items, cfg.Server.ImageDir)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: *scan,
		Debounce:    *debounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "roots", roots, "error", err)
		os.Exit(1)
	}
	logger.Info("watching for menu images", "roots", roots, "initial_scan", *scan)

	worker := ingest.NewWorker(logger, runSvc, pipeline.BatchConfig{
		MaxItems: cfg.Batch.MaxItems,
		Size:     cfg.Batch.Size,
	})
	worker.Run(ctx, events, errs)

	logger.Info("menuwatch stopped")
}
