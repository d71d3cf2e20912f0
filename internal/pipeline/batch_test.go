package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/genimage"
	"github.com/plateworks/menugen/internal/menu"
)

// scriptedGenerator fails items whose prompt contains a key of failures,
// succeeds otherwise, and records every prompt it sees.
type scriptedGenerator struct {
	failures map[string]error
	calls    []string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string, size constants.ImageSize) (genimage.Image, error) {
	g.calls = append(g.calls, prompt)
	for key, err := range g.failures {
		if strings.Contains(prompt, key) {
			return genimage.Image{}, err
		}
	}
	px := size.Pixels()
	return genimage.Image{Data: []byte("png"), Width: px, Height: px}, nil
}

func names(n int) []menu.Item {
	items := make([]menu.Item, n)
	for i := range items {
		items[i] = menu.Item(fmt.Sprintf("Dish %02d", i))
	}
	return items
}

func TestProcessTruncatesToMaxItems(t *testing.T) {
	gen := &scriptedGenerator{}
	bp := NewBatchProcessor(gen, nil)

	items := names(10)
	res := bp.Process(context.Background(), items, BatchConfig{MaxItems: 3, Size: constants.SizeSmall}, nil)

	require.Len(t, res.Items, 3)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 7, res.Truncated)
	for i, r := range res.Items {
		assert.Equal(t, items[i], r.Item, "order must match input")
		require.NotNil(t, r.Image)
		assert.Nil(t, r.Err)
	}
	assert.Len(t, gen.calls, 3, "excess items must not be attempted")
}

func TestProcessIsolatesPerItemFailures(t *testing.T) {
	gen := &scriptedGenerator{failures: map[string]error{
		"Dish 01": &genimage.GenerationError{Reason: constants.ReasonRateLimited, Message: "quota"},
	}}
	bp := NewBatchProcessor(gen, nil)

	var progress [][2]int
	res := bp.Process(context.Background(), names(3), BatchConfig{MaxItems: 10}, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})

	require.Len(t, res.Items, 3)
	assert.Equal(t, 0, res.Truncated)

	assert.NotNil(t, res.Items[0].Image)
	assert.Nil(t, res.Items[0].Err)

	require.NotNil(t, res.Items[1].Err)
	assert.Equal(t, constants.ReasonRateLimited, res.Items[1].Err.Reason)
	assert.Nil(t, res.Items[1].Image)

	assert.NotNil(t, res.Items[2].Image, "item after the failure is unaffected")

	require.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress, "one progress call per attempted item")
}

func TestProcessWrapsUncategorizedErrors(t *testing.T) {
	gen := &scriptedGenerator{failures: map[string]error{
		"Dish 00": errors.New("connection reset"),
	}}
	bp := NewBatchProcessor(gen, nil)

	res := bp.Process(context.Background(), names(1), BatchConfig{MaxItems: 1}, nil)
	require.NotNil(t, res.Items[0].Err)
	assert.Equal(t, constants.ReasonTransientNetwork, res.Items[0].Err.Reason)
}

func TestProcessDefaultsMaxItems(t *testing.T) {
	gen := &scriptedGenerator{}
	bp := NewBatchProcessor(gen, nil)

	res := bp.Process(context.Background(), names(12), BatchConfig{}, nil)
	assert.Equal(t, DefaultMaxItems, res.Attempted)
	assert.Equal(t, 12-DefaultMaxItems, res.Truncated)
}

func TestProcessEmptyItems(t *testing.T) {
	gen := &scriptedGenerator{}
	bp := NewBatchProcessor(gen, nil)

	res := bp.Process(context.Background(), nil, BatchConfig{MaxItems: 5}, nil)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Attempted)
	assert.Zero(t, res.Truncated)
	assert.Empty(t, gen.calls)
}

func TestProcessPromptMatchesBuilder(t *testing.T) {
	gen := &scriptedGenerator{}
	bp := NewBatchProcessor(gen, nil)

	res := bp.Process(context.Background(), []menu.Item{"Pad Thai"}, BatchConfig{MaxItems: 1, Size: constants.SizeLarge}, nil)
	require.Len(t, res.Items, 1)
	assert.Contains(t, res.Items[0].Prompt, "Pad Thai")
	assert.Equal(t, res.Items[0].Prompt, gen.calls[0])
}
