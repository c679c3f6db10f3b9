package extract

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/layout"
)

// muPDFBackend reads the text layer page by page through MuPDF. Lines come
// back already delimited, so only whitespace normalization applies.
type muPDFBackend struct{}

func (b *muPDFBackend) Name() string { return "mupdf" }

func (b *muPDFBackend) Lines(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var lines []string
	for i := 0; i < doc.NumPage(); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("page %d text: %w", i+1, err)
		}
		lines = append(lines, layout.NormalizeText(text)...)
	}
	return lines, nil
}
