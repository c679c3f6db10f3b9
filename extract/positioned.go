package extract

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/layout"
)

// layoutBackend extracts positioned text fragments and recomposes visual
// rows from their coordinates. This is the backend that copes with the
// export's overlapping reference columns, since cell boundaries are
// recovered from horizontal gaps rather than the extraction order.
type layoutBackend struct{}

func (b *layoutBackend) Name() string { return "layout" }

func (b *layoutBackend) Lines(ctx context.Context, path string) (lines []string, err error) {
	// The reader panics on some malformed xref tables instead of returning
	// an error; treat that as a backend failure so auto mode can fall back.
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("read pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		frags := make([]layout.Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			frags = append(frags, layout.Fragment{Text: t.S, X: t.X, Y: t.Y, W: t.W})
		}
		lines = append(lines, layout.ComposeRows(frags, 0, 0)...)
	}
	return lines, nil
}
