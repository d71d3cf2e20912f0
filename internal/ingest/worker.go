package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/runs"
)

// batchRunner is the slice of runs.Service the worker needs.
type batchRunner interface {
	Run(ctx context.Context, req runs.Request) (runs.Outcome, error)
}

// Worker drains watcher events and runs each new menu image through the
// pipeline. Files are deduplicated by content hash so that a re-save or
// rename of an already processed menu does not start another batch.
type Worker struct {
	Logger *slog.Logger
	Runs   batchRunner
	Config pipeline.BatchConfig

	mu   sync.Mutex
	seen map[string]struct{} // sha256 hex of processed files
}

func NewWorker(logger *slog.Logger, svc *runs.Service, cfg pipeline.BatchConfig) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		Logger: logger,
		Runs:   svc,
		Config: cfg,
		seen:   make(map[string]struct{}),
	}
}

// Run processes events until the channel closes or ctx is cancelled.
// Watcher errors are logged and do not stop the worker.
func (w *Worker) Run(ctx context.Context, events <-chan string, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			w.handle(ctx, path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.Logger.Error("ingest.worker.watch_error", "error", err)
		}
	}
}

func (w *Worker) handle(ctx context.Context, path string) {
	if w.seen == nil {
		w.seen = make(map[string]struct{})
	}

	sum, err := hashFile(path)
	if err != nil {
		w.Logger.Warn("ingest.worker.hash_failed", "path", path, "error", err)
		return
	}

	w.mu.Lock()
	if _, dup := w.seen[sum]; dup {
		w.mu.Unlock()
		w.Logger.Info("ingest.worker.deduplicated", "path", path, "hash", sum)
		return
	}
	w.seen[sum] = struct{}{}
	w.mu.Unlock()

	w.Logger.Info("ingest.worker.processing", "path", path)
	out, err := w.Runs.Run(ctx, runs.Request{
		ImagePath: path,
		Config:    w.Config,
	})
	if err != nil {
		w.Logger.Error("ingest.worker.run_failed", "path", path, "error", err)
		return
	}
	w.Logger.Info("ingest.worker.done",
		"path", path,
		"batch_id", out.BatchID,
		"items", len(out.Items),
		"attempted", out.Result.Attempted,
		"truncated", out.Result.Truncated,
	)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
