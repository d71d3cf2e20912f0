// menugend is the gRPC daemon: menu in, food images out, with batch history
// in Postgres.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/plateworks/menugen/gen/menugen/v1"
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
	"github.com/plateworks/menugen/internal/server"
)

func main() {
	_ = godotenv.Load()

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, slogger)
	if err != nil {
		log.Fatalf("initializing database: %v", err)
	}
	defer dbResult.Cleanup()

	batches := repo.NewBatchRepository(dbResult.Client, slogger)
	items := repo.NewBatchItemRepository(dbResult.Client, slogger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		HeicConverter:       cfg.OCR.HeicConverter,
		EnableTSVConfidence: true,
	}, slogger)
	stage := pipeline.NewExtractStage(extract.NewOCRAdapter(extractor), slogger)

	var parser menu.Parser = menu.NewHeuristicParser()
	if cfg.LLM.Enabled {
		client := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, slogger)
		parser = llm.NewParser(client, slogger)
		log.Infow("model-backed menu parser enabled", "model", cfg.LLM.Model)
	}

	gen := imagen.NewClient(imagen.Config{
		APIKey:  cfg.Imagen.APIKey,
		BaseURL: cfg.Imagen.BaseURL,
		Model:   cfg.Imagen.Model,
		Timeout: cfg.Imagen.Timeout,
	}, slogger)

	proc := pipeline.NewProcessor(slogger, stage, parser, pipeline.NewBatchProcessor(gen, slogger))
	runSvc := runs.NewService(slogger, proc, batches, items, cfg.Server.ImageDir)
	exporter := export.NewService(batches, slogger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewMenuGenService(runSvc, proc, batches, exporter, zlog)
	v1.RegisterMenuGenServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
