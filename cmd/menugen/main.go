// menugen is the one-shot CLI: point it at a menu photo or paste menu text,
// get a folder of generated food images plus an XLSX manifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/common"
	"github.com/plateworks/menugen/internal/export"
	"github.com/plateworks/menugen/internal/extract"
	"github.com/plateworks/menugen/internal/genimage/imagen"
	"github.com/plateworks/menugen/internal/llm"
	"github.com/plateworks/menugen/internal/llm/openai"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/ocr"
	"github.com/plateworks/menugen/internal/pipeline"
	repo "github.com/plateworks/menugen/internal/repository"
	"github.com/plateworks/menugen/internal/runs"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		image     = flag.String("image", "", "path to a menu photo (jpg/jpeg/png/heic/heif)")
		text      = flag.String("text", "", "menu text to parse instead of an image")
		maxItems  = flag.Int("max-items", 0, "cap on generated items (default from MENUGEN_MAX_ITEMS)")
		sizeStr   = flag.String("size", "", "image size: small | medium | large")
		out       = flag.String("out", "", "output directory (defaults next to the input image)")
		xlsx      = flag.Bool("xlsx", true, "also write an XLSX manifest of the batch")
		parseOnly = flag.Bool("parse-only", false, "parse the menu and print items without generating images")
		quiet     = flag.Bool("quiet", false, "suppress progress output")
	)
	flag.Parse()

	_ = godotenv.Load()

	if (*image == "") == (*text == "") {
		printError("Error: exactly one of --image or --text is required\n")
		os.Exit(1)
	}
	if *out == "" {
		if *image != "" {
			*out = filepath.Join(filepath.Dir(*image), "menugen-out")
		} else {
			*out = "menugen-out"
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	size := cfg.Batch.Size
	if *sizeStr != "" {
		parsed, ok := constants.ParseImageSize(*sizeStr)
		if !ok {
			printError("Error: size must be one of small, medium, large: got %q\n", *sizeStr)
			os.Exit(1)
		}
		size = parsed
	}
	limit := cfg.Batch.MaxItems
	if *maxItems > 0 {
		limit = *maxItems
	}

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

	if *parseOnly {
		runParseOnly(ctx, stage, parser, *image, *text)
		return
	}

	gen := imagen.NewClient(imagen.Config{
		APIKey:  cfg.Imagen.APIKey,
		BaseURL: cfg.Imagen.BaseURL,
		Model:   cfg.Imagen.Model,
		Timeout: cfg.Imagen.Timeout,
	}, logger)
	proc := pipeline.NewProcessor(logger, stage, parser, pipeline.NewBatchProcessor(gen, logger))

	// One-shot runs keep history in a throwaway in-memory store; the XLSX
	// manifest is the durable artifact.
	dbResult, err := common.InitDatabase(ctx, cfg, true, logger)
	if err != nil {
		printError("Error: initializing store: %v\n", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	batches := repo.NewBatchRepository(dbResult.Client, logger)
	items := repo.NewBatchItemRepository(dbResult.Client, logger)
	runSvc := runs.NewService(logger, proc, batches, items, *out)

	req := runs.Request{
		ImagePath: *image,
		Text:      *text,
		Config:    pipeline.BatchConfig{MaxItems: limit, Size: size},
	}
	if !*quiet {
		req.Progress = func(completed, total int) {
			fmt.Printf("generated %d/%d\n", completed, total)
		}
	}

	outcome, err := runSvc.Run(ctx, req)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	if len(outcome.Items) == 0 {
		fmt.Println("No menu items found.")
		return
	}

	ok, failed := 0, 0
	for _, r := range outcome.Result.Items {
		if r.Err != nil {
			failed++
			fmt.Printf("  FAILED  %-30s %s: %s\n", r.Item.String(), r.Err.Reason, r.Err.Message)
		} else {
			ok++
			fmt.Printf("  OK      %s\n", r.Item.String())
		}
	}

	if *xlsx {
		exporter := export.NewService(batches, logger)
		data, err := exporter.ExportBatchXLSX(ctx, outcome.BatchID)
		if err != nil {
			printError("Error: export manifest: %v\n", err)
			os.Exit(1)
		}
		batchDir := filepath.Join(*out, outcome.BatchID.String())
		if err := os.MkdirAll(batchDir, 0o755); err != nil {
			printError("Error: create output dir: %v\n", err)
			os.Exit(1)
		}
		manifest := filepath.Join(batchDir, "manifest.xlsx")
		if err := os.WriteFile(manifest, data, 0o644); err != nil {
			printError("Error: write manifest: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest: %s\n", manifest)
	}

	fmt.Printf("Done: %d parsed, %d generated, %d failed, %d dropped by cap\n",
		len(outcome.Items), ok, failed, outcome.Result.Truncated)
	fmt.Printf("Output: %s\n", filepath.Join(*out, outcome.BatchID.String()))
}

func runParseOnly(ctx context.Context, stage *pipeline.ExtractStage, parser menu.Parser, image, text string) {
	var raw menu.RawText
	if image != "" {
		r, _, err := stage.Run(ctx, image)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		raw = r
	} else {
		raw = menu.RawText{Text: text, Source: menu.SourceManual}
	}

	items, err := parser.Parse(ctx, raw)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		fmt.Println("No menu items found.")
		return
	}
	for i, it := range items {
		fmt.Printf("%2d. %s\n", i+1, strings.TrimSpace(it.String()))
	}
}
