package layout

import (
	"reflect"
	"testing"
)

func TestComposeRowsGroupsByBand(t *testing.T) {
	// Two visual rows; fragments arrive out of order and the second row's
	// fragments differ slightly in Y, as the export renders them.
	frags := []Fragment{
		{Text: "62123456789", X: 200, Y: 698.5, W: 80},
		{Text: "John Smith", X: 37, Y: 700, W: 70},
		{Text: "Acme Stores", X: 37, Y: 660, W: 75},
		{Text: "40998877", X: 200, Y: 659, W: 60},
	}
	got := ComposeRows(frags, 0, 0)
	want := []string{
		"John Smith\t62123456789",
		"Acme Stores\t40998877",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ComposeRows() = %q, want %q", got, want)
	}
}

func TestComposeRowsCellBoundaries(t *testing.T) {
	// Adjacent fragments merge with a space; a wide gap becomes a cell
	// boundary even when the columns overlap vertically.
	frags := []Fragment{
		{Text: "John", X: 37, Y: 700, W: 30},
		{Text: "Smith", X: 69, Y: 700, W: 35},
		{Text: "62123456789", X: 200, Y: 700, W: 80},
		{Text: "Their Ref", X: 300, Y: 700, W: 55},
		{Text: "Rent Jan", X: 380, Y: 700, W: 50},
	}
	got := ComposeRows(frags, 0, 0)
	if len(got) != 1 {
		t.Fatalf("expected one row, got %q", got)
	}
	want := "John Smith\t62123456789\tTheir Ref\tRent Jan"
	if got[0] != want {
		t.Fatalf("row = %q, want %q", got[0], want)
	}
}

func TestComposeRowsDropsBlankFragments(t *testing.T) {
	frags := []Fragment{
		{Text: "   ", X: 10, Y: 100, W: 5},
		{Text: "", X: 20, Y: 100, W: 5},
	}
	if got := ComposeRows(frags, 0, 0); len(got) != 0 {
		t.Fatalf("expected no rows, got %q", got)
	}
}

func TestNormalizeText(t *testing.T) {
	text := "John Smith  62123456789  Rent Jan\n\n\x0cPage 1 of 3\n"
	got := NormalizeText(text)
	want := []string{
		"John Smith\t62123456789\tRent Jan",
		"Page 1 of 3",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeText() = %q, want %q", got, want)
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   \t  ", ""},
		{"a  b", "a\tb"},
		{"a b", "a b"},
		{"  spaced   out  cells ", "spaced\tout\tcells"},
		{"ctrl\x01chars", "ctrlchars"},
	}
	for _, tt := range tests {
		if got := NormalizeLine(tt.in); got != tt.want {
			t.Fatalf("NormalizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCells(t *testing.T) {
	got := Cells("John Smith\t62123456789\t\tRent Jan")
	want := []string{"John Smith", "62123456789", "Rent Jan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cells() = %q, want %q", got, want)
	}
}
