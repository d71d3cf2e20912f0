package genimage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeNormalizeFlattensAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.Set(2, 2, color.NRGBA{R: 255, A: 128}) // semi-transparent red

	out, err := DecodeNormalize(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 8, out.Width)
	assert.Equal(t, 8, out.Height)

	decoded, _, err := image.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	_, _, _, a := decoded.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), a, "alpha must be flattened to opaque")
}

func TestDecodeNormalizeAcceptsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 16, 9)), nil))

	out, err := DecodeNormalize(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 16, out.Width)
	assert.Equal(t, 9, out.Height)
}

func TestDecodeNormalizeRejectsGarbage(t *testing.T) {
	_, err := DecodeNormalize([]byte("definitely not an image"))
	require.Error(t, err)
}
