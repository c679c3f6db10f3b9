package recipients

import (
	"regexp"
	"strings"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/layout"
)

// South African account numbers run 8-11 digits. The word boundaries keep a
// longer digit run (card numbers, cell numbers) from matching via its first
// eleven digits.
var accountRe = regexp.MustCompile(`\b\d{8,11}\b`)

var (
	amountRe     = regexp.MustCompile(`^[\d,]+\.\d{2}$`)
	dateRe       = regexp.MustCompile(`^\d{2} [A-Za-z]{3} \d{4}$`)
	letterRunRe  = regexp.MustCompile(`[A-Za-z]{2,}`)
	trailDigitRe = regexp.MustCompile(`\s+\d+$`)
)

// headerKeywords mark column-title and boilerplate rows in the export that
// can still carry digit runs (cut-off times, system notices).
var headerKeywords = []string{
	"Their Reference",
	"My Reference",
	"Pay Amount",
	"Last Paid",
	"Please note",
	"Due to system",
	"Real-time payments",
	"View the cut-off",
}

// categoryLabels are the section headers FNB groups recipients under.
var categoryLabels = map[string]bool{
	"Education":             true,
	"Entertainment/sports":  true,
	"Medical":               true,
	"Motoring":              true,
	"Personal Services":     true,
	"Household Maintenance": true,
	"Family And Friends":    true,
	"Not Categorised":       true,
}

// Stats counts parsing outcomes for one document.
type Stats struct {
	// Lines is the number of reconstructed lines inspected.
	Lines int
	// Parsed is the number of lines that produced a recipient.
	Parsed int
	// Skipped counts lines that contained an account-shaped digit run but
	// failed field extraction (e.g. no name text before the run).
	Skipped int
}

// Parse classifies each line as a recipient row or noise and extracts the
// name, account number and reference from recipient rows. Lines without a
// contiguous 8-11 digit run are noise; lines with one that fail field
// extraction are skipped and counted, never fatal.
func Parse(lines []string) ([]Recipient, Stats) {
	var recs []Recipient
	var stats Stats
	for _, line := range lines {
		stats.Lines++
		rec, ok, candidate := parseLine(line)
		if ok {
			recs = append(recs, rec)
			stats.Parsed++
		} else if candidate {
			stats.Skipped++
		}
	}
	return recs, stats
}

// parseLine extracts one recipient from a composed row. candidate reports
// whether the line at least contained an account-shaped digit run.
func parseLine(line string) (rec Recipient, ok bool, candidate bool) {
	if isNoiseLine(line) {
		return Recipient{}, false, false
	}

	cells := layout.Cells(line)
	accountCell, loc := -1, []int(nil)
	for i, cell := range cells {
		if m := accountRe.FindStringIndex(cell); m != nil {
			accountCell, loc = i, m
			break
		}
	}
	if accountCell < 0 {
		return Recipient{}, false, false
	}
	account := cells[accountCell][loc[0]:loc[1]]

	var nameParts []string
	for _, cell := range cells[:accountCell] {
		if isValueNoise(cell) {
			continue
		}
		nameParts = append(nameParts, cell)
	}
	if prefix := strings.TrimSpace(cells[accountCell][:loc[0]]); prefix != "" {
		nameParts = append(nameParts, prefix)
	}
	name := cleanName(strings.Join(nameParts, " "))
	if name == "" || !letterRunRe.MatchString(name) {
		return Recipient{}, false, true
	}

	// Everything after the first qualifying digit run is reference
	// territory; later digit runs are reference text, never re-parsed as
	// account numbers.
	var refs []string
	if suffix := strings.TrimSpace(cells[accountCell][loc[1]:]); suffix != "" && !isValueNoise(suffix) {
		refs = append(refs, suffix)
	}
	for _, cell := range cells[accountCell+1:] {
		if isValueNoise(cell) {
			continue
		}
		refs = append(refs, cell)
	}

	reference := name
	switch {
	case len(refs) >= 2:
		// The export renders "Their Reference" and "My Reference" side by
		// side; the import wants the latter.
		reference = refs[1]
	case len(refs) == 1:
		reference = refs[0]
	}

	return Recipient{Name: name, Account: account, Reference: reference}, true, true
}

func isNoiseLine(line string) bool {
	flat := strings.Join(layout.Cells(line), " ")
	if categoryLabels[flat] {
		return true
	}
	for _, kw := range headerKeywords {
		if strings.Contains(flat, kw) {
			return true
		}
	}
	return false
}

// isValueNoise reports whether a cell is export chrome rather than name or
// reference text: monetary amounts, last-paid dates, status markers.
func isValueNoise(cell string) bool {
	switch {
	case cell == "0.00":
		return true
	case strings.Contains(cell, "Inactive"):
		return true
	case amountRe.MatchString(strings.ReplaceAll(cell, " ", "")):
		return true
	case dateRe.MatchString(cell):
		return true
	}
	return false
}

// cleanName collapses whitespace, strips trailing punctuation, and drops
// trailing stray digit tokens left over from partially captured account
// numbers.
func cleanName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	for {
		trimmed := strings.TrimRight(name, " .,:;-")
		trimmed = trailDigitRe.ReplaceAllString(trimmed, "")
		if trimmed == name {
			return name
		}
		name = trimmed
	}
}
