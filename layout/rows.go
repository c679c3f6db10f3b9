// Package layout reassembles extraction output into logical table rows.
//
// The FNB recipient export renders each visual row as loose text fragments,
// and its two reference columns ("Their Reference" and "My Reference") sit at
// overlapping horizontal offsets. Positioned fragments are therefore grouped
// by vertical band rather than trusting the extraction order, and wide
// horizontal gaps are preserved as cell boundaries so the parser can still
// tell the columns apart.
package layout

import (
	"sort"
	"strings"
)

// Fragment is a positioned piece of page text in PDF user space, where the
// Y origin is the bottom-left corner of the page.
type Fragment struct {
	Text string
	X    float64
	Y    float64
	W    float64
}

const (
	// DefaultYTolerance is the vertical band, in points, within which two
	// fragments are considered part of the same visual row.
	DefaultYTolerance = 3.0

	// DefaultColumnGap is the horizontal gap, in points, beyond which two
	// adjacent fragments belong to different table cells.
	DefaultColumnGap = 10.0
)

// CellSeparator delimits table cells inside a composed row.
const CellSeparator = "\t"

// ComposeRows groups fragments into visual rows and renders each row as a
// single line, top of page first, cells left to right. Fragments within
// yTol of a row's anchor join that row; a horizontal gap of colGap or more
// between neighbours becomes a cell boundary. Blank rows are dropped.
func ComposeRows(frags []Fragment, yTol, colGap float64) []string {
	if yTol <= 0 {
		yTol = DefaultYTolerance
	}
	if colGap <= 0 {
		colGap = DefaultColumnGap
	}

	sorted := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) != "" {
			sorted = append(sorted, f)
		}
	}
	// Y decreases down the page, so rows emerge in reading order when
	// sorted by descending Y.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]Fragment
	var current []Fragment
	var anchorY float64
	for _, f := range sorted {
		if current == nil || anchorY-f.Y > yTol {
			if current != nil {
				rows = append(rows, current)
			}
			current = []Fragment{f}
			anchorY = f.Y
			continue
		}
		current = append(current, f)
	}
	if current != nil {
		rows = append(rows, current)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		line := renderRow(row, colGap)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func renderRow(row []Fragment, colGap float64) string {
	var b strings.Builder
	for i, f := range row {
		text := collapseSpaces(f.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			gap := f.X - (row[i-1].X + row[i-1].W)
			if gap >= colGap {
				b.WriteString(CellSeparator)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(text)
	}
	return strings.TrimSpace(b.String())
}

// NormalizeText converts plain extracted text (MuPDF or OCR output) into the
// same line shape ComposeRows produces: control characters stripped, runs of
// two or more spaces treated as cell boundaries, remaining whitespace
// collapsed, blank lines removed.
func NormalizeText(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := NormalizeLine(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// NormalizeLine normalizes a single raw text line. It returns "" for lines
// that are blank after cleaning.
func NormalizeLine(raw string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return '\t'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, raw)

	cells := splitOnGaps(clean)
	for i, c := range cells {
		cells[i] = collapseSpaces(c)
	}
	return strings.TrimSpace(strings.Join(cells, CellSeparator))
}

// splitOnGaps splits a line at tabs and at runs of two or more spaces, which
// is how text-layer extraction flattens column boundaries.
func splitOnGaps(s string) []string {
	var cells []string
	var b strings.Builder
	spaces := 0
	flush := func() {
		if c := strings.TrimSpace(b.String()); c != "" {
			cells = append(cells, c)
		}
		b.Reset()
	}
	for _, r := range s {
		switch {
		case r == '\t':
			flush()
			spaces = 0
		case r == ' ':
			spaces++
		default:
			if spaces >= 2 && b.Len() > 0 {
				flush()
			} else if spaces > 0 && b.Len() > 0 {
				b.WriteByte(' ')
			}
			spaces = 0
			b.WriteRune(r)
		}
	}
	flush()
	return cells
}

// Cells splits a composed row back into its table cells.
func Cells(line string) []string {
	parts := strings.Split(line, CellSeparator)
	cells := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
