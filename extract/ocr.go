package extract

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/layout"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/ocr"
)

const (
	// ocrRenderDPI is the raster resolution per page before upscaling.
	ocrRenderDPI = 150
	// ocrScale doubles the raster so Tesseract copes with the export's
	// small receipt-style fonts.
	ocrScale = 2
)

// ocrBackend rasterizes each page and runs optical recognition over it.
type ocrBackend struct {
	engine  ocr.Engine
	options []ocr.InputOption
}

func (b *ocrBackend) Name() string { return "ocr" }

func (b *ocrBackend) Lines(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	inputs := make([]ocr.Input, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		raster, err := doc.ImageDPI(i, ocrRenderDPI)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		opts := append([]ocr.InputOption{ocr.WithDPI(ocrRenderDPI * ocrScale)}, b.options...)
		in, err := ocr.InputFromImage(i, upscale(raster, ocrScale), opts...)
		if err != nil {
			return nil, fmt.Errorf("prepare page %d: %w", i+1, err)
		}
		inputs = append(inputs, in)
	}

	results, err := ocr.RecognizeAll(ctx, b.engine, inputs)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}
	var lines []string
	for _, res := range results {
		lines = append(lines, layout.NormalizeText(res.PlainText)...)
	}
	return lines, nil
}

func upscale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}
