package runs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/gen/ent"
	"github.com/plateworks/menugen/internal/extract"
	"github.com/plateworks/menugen/internal/genimage"
	"github.com/plateworks/menugen/internal/menu"
	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/repository"
)

type fakeBatchRepo struct {
	started  []repository.StartBatchRequest
	finished []repository.FinishBatchRequest
	failures []string
	id       uuid.UUID
}

func (f *fakeBatchRepo) Start(_ context.Context, req repository.StartBatchRequest) (*ent.Batch, error) {
	f.started = append(f.started, req)
	return &ent.Batch{ID: f.id}, nil
}

func (f *fakeBatchRepo) FinishSuccess(_ context.Context, _ uuid.UUID, req repository.FinishBatchRequest) error {
	f.finished = append(f.finished, req)
	return nil
}

func (f *fakeBatchRepo) FinishFailure(_ context.Context, _ uuid.UUID, msg string) error {
	f.failures = append(f.failures, msg)
	return nil
}

func (f *fakeBatchRepo) GetWithItems(context.Context, uuid.UUID) (*ent.Batch, []*ent.BatchItem, error) {
	return nil, nil, errors.New("not implemented")
}

func (f *fakeBatchRepo) ListRecent(context.Context, int) ([]*ent.Batch, error) {
	return nil, nil
}

type fakeItemRepo struct {
	recorded []repository.ItemOutcome
}

func (f *fakeItemRepo) RecordOutcomes(_ context.Context, _ uuid.UUID, outcomes []repository.ItemOutcome) error {
	f.recorded = append(f.recorded, outcomes...)
	return nil
}

type stubGenerator struct {
	failOn map[string]constants.FailureReason
}

func (g *stubGenerator) Generate(_ context.Context, prompt string, size constants.ImageSize) (genimage.Image, error) {
	for needle, reason := range g.failOn {
		if needle != "" && strings.Contains(strings.ToLower(prompt), needle) {
			return genimage.Image{}, &genimage.GenerationError{Reason: reason, Message: "stubbed failure"}
		}
	}
	px := size.Pixels()
	return genimage.Image{Data: []byte("png-bytes"), Width: px, Height: px}, nil
}

type failingExtractor struct{ err error }

func (f *failingExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{}, f.err
}

func (f *failingExtractor) ExtractBytes(context.Context, []byte, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{}, f.err
}

func newService(t *testing.T, gen genimage.Generator, tx extract.TextExtractor) (*Service, *fakeBatchRepo, *fakeItemRepo) {
	t.Helper()
	batches := &fakeBatchRepo{id: uuid.New()}
	items := &fakeItemRepo{}
	stage := pipeline.NewExtractStage(tx, nil)
	proc := pipeline.NewProcessor(nil, stage, menu.NewHeuristicParser(), pipeline.NewBatchProcessor(gen, nil))
	svc := NewService(nil, proc, batches, items, t.TempDir())
	return svc, batches, items
}

func TestRunTextRecordsBatchAndImages(t *testing.T) {
	svc, batches, items := newService(t, &stubGenerator{}, &failingExtractor{err: errors.New("unused")})

	out, err := svc.Run(context.Background(), Request{
		Text:   "Margherita Pizza $12\nTiramisu $7\n",
		Config: pipeline.BatchConfig{MaxItems: 5, Size: constants.SizeSmall},
	})
	require.NoError(t, err)

	assert.Equal(t, []menu.Item{"Margherita Pizza", "Tiramisu"}, out.Items)
	assert.Equal(t, 2, out.Result.Attempted)
	assert.Zero(t, out.Result.Truncated)

	require.Len(t, batches.started, 1)
	assert.Equal(t, "MANUAL", batches.started[0].Source)
	require.Len(t, batches.finished, 1)
	assert.Equal(t, 2, batches.finished[0].Attempted)

	require.Len(t, items.recorded, 2)
	for i, o := range items.recorded {
		assert.Equal(t, i, o.Position)
		assert.Equal(t, constants.ItemStatusOK, o.Status)
		require.NotEmpty(t, o.ImagePath)
		data, err := os.ReadFile(o.ImagePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	}

	// images live under <dir>/<batch-id>/
	assert.Equal(t, out.BatchID.String(), filepath.Base(filepath.Dir(out.ImagePath[0])))
}

func TestRunItemFailureIsRecordedNotFatal(t *testing.T) {
	gen := &stubGenerator{failOn: map[string]constants.FailureReason{
		"tiramisu": constants.ReasonRateLimited,
	}}
	svc, batches, items := newService(t, gen, &failingExtractor{err: errors.New("unused")})

	out, err := svc.Run(context.Background(), Request{
		Text:   "Margherita Pizza\nTiramisu\n",
		Config: pipeline.BatchConfig{MaxItems: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Result.Attempted)

	require.Len(t, items.recorded, 2)
	assert.Equal(t, constants.ItemStatusOK, items.recorded[0].Status)
	assert.Equal(t, constants.ItemStatusFailed, items.recorded[1].Status)
	assert.Equal(t, constants.ReasonRateLimited, items.recorded[1].FailureReason)
	assert.Empty(t, items.recorded[1].ImagePath)

	require.Len(t, batches.finished, 1)
	assert.Empty(t, batches.failures)
}

func TestRunZeroItemsFinishesWithoutGeneration(t *testing.T) {
	svc, batches, items := newService(t, &stubGenerator{}, &failingExtractor{err: errors.New("unused")})

	out, err := svc.Run(context.Background(), Request{
		Text:   "$5\n$10\n----\n",
		Config: pipeline.BatchConfig{MaxItems: 5},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.Result.Attempted)
	assert.Empty(t, items.recorded)

	require.Len(t, batches.finished, 1)
	assert.Equal(t, 0, batches.finished[0].ParsedItems)
}

func TestRunExtractionFailureRecordsFailedBatch(t *testing.T) {
	boom := errors.New("tesseract exploded")
	svc, batches, _ := newService(t, &stubGenerator{}, &failingExtractor{err: boom})

	_, err := svc.Run(context.Background(), Request{
		ImagePath: "/tmp/menu.png",
		Config:    pipeline.BatchConfig{MaxItems: 5},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	require.Len(t, batches.started, 1)
	assert.Equal(t, "OCR", batches.started[0].Source)
	require.Len(t, batches.failures, 1)
	assert.Contains(t, batches.failures[0], "tesseract exploded")
	assert.Empty(t, batches.finished)
}

func TestRunDefaultsCapAndSize(t *testing.T) {
	svc, batches, _ := newService(t, &stubGenerator{}, &failingExtractor{err: errors.New("unused")})

	out, err := svc.Run(context.Background(), Request{
		Text: "One\nTwo\nThree\nFour\nFive\nSix\nSeven\n",
	})
	require.NoError(t, err)

	assert.Equal(t, pipeline.DefaultMaxItems, out.Result.Attempted)
	assert.Equal(t, 2, out.Result.Truncated)
	require.Len(t, batches.started, 1)
	assert.Equal(t, constants.SizeMedium, batches.started[0].Size)
}
