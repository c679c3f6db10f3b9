package recipients

import (
	"reflect"
	"testing"
)

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	recs := []Recipient{
		{Name: "John Smith", Account: "40998877"},
		{Name: "John  Smith", Account: "40998877"},
		{Name: "Acme Stores", Account: "62123456789"},
	}
	got := Dedupe(recs)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
	if got[0].Name != "John Smith" {
		t.Fatalf("first occurrence must win, got %q", got[0].Name)
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	recs := []Recipient{
		{Account: "11111111"},
		{Account: "22222222"},
		{Account: "11111111"},
		{Account: "33333333"},
		{Account: "22222222"},
	}
	got := Dedupe(recs)
	var order []string
	for _, r := range got {
		order = append(order, r.Account)
	}
	want := []string{"11111111", "22222222", "33333333"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	recs := []Recipient{
		{Account: "11111111"},
		{Account: "22222222"},
		{Account: "11111111"},
	}
	once := Dedupe(recs)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Dedupe is not idempotent: %v vs %v", once, twice)
	}
}
