package ocr

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout map[string][]byte // keyed by last arg ("stdout" text mode vs "tsv")
	err    error
}

func (f fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	key := "text"
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return f.stdout[key], nil, nil
}

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)
	path := filepath.Join(dir, "menu.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestExtractNormalizesText(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{stdout: map[string][]byte{
		"text": []byte("Margherita Pizza  $12.99\r\n\r\n\r\n\r\nCaesar Salad 8.50\t\t\n"),
	}}

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza $12.99\n\nCaesar Salad 8.50", res.Text)
	assert.Equal(t, "eng", res.Language)
	assert.Greater(t, res.Confidence, float32(0))
}

func TestExtractEmptyTextIsErrNoText(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{stdout: map[string][]byte{"text": []byte("   \n\n  ")}}

	_, err := e.Extract(context.Background(), path)
	require.ErrorIs(t, err, ErrNoText)
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.gif")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a"), 0o644))

	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), path)
	require.ErrorIs(t, err, ErrUndecodable)
}

func TestExtractRejectsCorruptImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{stdout: map[string][]byte{"text": []byte("ignored")}}
	_, err := e.Extract(context.Background(), path)
	require.ErrorIs(t, err, ErrUndecodable)
}

func TestTSVConfidenceBlending(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tPizza\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t80\tSalad\n"
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil)
	e.runner = fakeRunner{stdout: map[string][]byte{
		"text": []byte("Pizza 12.99\nSalad 8.50\n"),
		"tsv":  []byte(tsv),
	}}

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	// mean word conf is 0.85, blended 0.7*ocr + 0.3*heuristic
	assert.InDelta(t, 0.7*0.85, float64(res.Confidence), 0.31)
	assert.LessOrEqual(t, res.Confidence, float32(1.0))
}

func TestNormalize(t *testing.T) {
	in := "a\r\nb\r\n\n\n\nc  d\te "
	assert.Equal(t, "a\nb\n\nc d e", Normalize(in))
}
