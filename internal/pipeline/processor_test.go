package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/extract"
	"github.com/plateworks/menugen/internal/menu"
)

type stubExtractor struct {
	res extract.TextExtractionResult
	err error
}

func (s stubExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return s.res, s.err
}

func (s stubExtractor) ExtractBytes(context.Context, []byte, string) (extract.TextExtractionResult, error) {
	return s.res, s.err
}

func newProcessor(tx extract.TextExtractor, gen *scriptedGenerator) *Processor {
	return NewProcessor(nil,
		NewExtractStage(tx, nil),
		menu.NewHeuristicParser(),
		NewBatchProcessor(gen, nil),
	)
}

func TestRunImageEndToEnd(t *testing.T) {
	gen := &scriptedGenerator{}
	p := newProcessor(stubExtractor{res: extract.TextExtractionResult{
		Text:       "Margherita Pizza $12.99\nCaesar Salad 8.50\n",
		Confidence: 0.9,
	}}, gen)

	items, res, err := p.RunImage(context.Background(), "/menus/lunch.png", BatchConfig{MaxItems: 10, Size: constants.SizeMedium}, nil)
	require.NoError(t, err)
	assert.Equal(t, []menu.Item{"Margherita Pizza", "Caesar Salad"}, items)
	require.Len(t, res.Items, 2)
	assert.NotNil(t, res.Items[0].Image)
	assert.NotNil(t, res.Items[1].Image)
}

func TestRunImageExtractionFailureAborts(t *testing.T) {
	gen := &scriptedGenerator{}
	wantErr := errors.New("tesseract: exit status 1")
	p := newProcessor(stubExtractor{err: wantErr}, gen)

	_, _, err := p.RunImage(context.Background(), "/menus/broken.png", BatchConfig{MaxItems: 10}, nil)
	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, gen.calls, "no generation may be attempted after extraction failure")
}

func TestRunTextZeroItemsSkipsGeneration(t *testing.T) {
	gen := &scriptedGenerator{}
	p := newProcessor(stubExtractor{}, gen)

	items, res, err := p.RunText(context.Background(), "12.99\n-----\n$\n", BatchConfig{MaxItems: 10}, nil)
	require.NoError(t, err, "zero items is a valid terminal state, not a failure")
	assert.Empty(t, items)
	assert.Empty(t, res.Items)
	assert.Empty(t, gen.calls)
}

func TestRunTextManualSource(t *testing.T) {
	gen := &scriptedGenerator{}
	p := newProcessor(stubExtractor{}, gen)

	var progress [][2]int
	items, res, err := p.RunText(context.Background(), "Pad Thai 11.00\nGreen Curry 12.50\nMango Sticky Rice 6.00\n",
		BatchConfig{MaxItems: 2, Size: constants.SizeSmall},
		func(done, total int) { progress = append(progress, [2]int{done, total}) })
	require.NoError(t, err)
	assert.Len(t, items, 3, "parser output is not truncated, only the batch is")
	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 1, res.Truncated)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
}
