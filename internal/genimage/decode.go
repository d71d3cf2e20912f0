package genimage

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/jpeg"
)

// DecodeNormalize decodes an API image payload (PNG or JPEG) and re-encodes
// it as opaque RGBA PNG, flattening any alpha onto white. Keeps downstream
// consumers from tripping over palette or alpha quirks.
func DecodeNormalize(data []byte) (Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decode image payload: %w", err)
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Image{}, fmt.Errorf("encode normalized png: %w", err)
	}
	return Image{Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}
