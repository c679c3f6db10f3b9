package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// InputFromImage converts a rendered page image into an OCR input using PNG
// encoding. The generated ID is stable for a page index to simplify
// correlation with downstream results.
func InputFromImage(pageIndex int, img image.Image, opts ...InputOption) (Input, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Input{}, fmt.Errorf("encode page raster: %w", err)
	}
	in := Input{
		ID:        fmt.Sprintf("page-%d", pageIndex),
		Image:     buf.Bytes(),
		Format:    ImageFormatPNG,
		PageIndex: pageIndex,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}
