package investec

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/recipients"
)

func TestFromRecipient(t *testing.T) {
	rec := recipients.Recipient{
		Name:       "John Smith",
		Account:    "62123456789",
		Reference:  "Rent Jan",
		Bank:       "FNB",
		BranchCode: "250655",
	}
	row := FromRecipient(rec)
	if row.AccountName != "John Smith" || row.Name != "John Smith" {
		t.Fatalf("both name columns must carry the extracted name: %+v", row)
	}
	if row.Bank != "FNB" || row.BranchCode != "250655" || row.AccountNumber != "62123456789" {
		t.Fatalf("unexpected bank columns: %+v", row)
	}
	if row.Reference != "Rent Jan" || row.StatementDescription != "Rent Jan" {
		t.Fatalf("statement description must mirror the reference: %+v", row)
	}
	if row.Fax != "" || row.Email != "" || row.Cell != "" {
		t.Fatalf("fax/email/cell must stay empty: %+v", row)
	}
}

func TestFromRecipientTruncation(t *testing.T) {
	long := strings.Repeat("x", 19) + "abcdef"
	row := FromRecipient(recipients.Recipient{Name: "John Smith", Account: "62123456789", Reference: long})
	if utf8.RuneCountInString(row.Reference) != 20 {
		t.Fatalf("reference length = %d, want exactly 20", utf8.RuneCountInString(row.Reference))
	}
	if row.Reference != long[:20] {
		t.Fatalf("reference = %q, want hard cut with no marker", row.Reference)
	}
	if row.StatementDescription != long[:20] {
		t.Fatalf("statement description = %q, want independent truncation", row.StatementDescription)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beneficiaries.csv")
	rows := FromRecipients([]recipients.Recipient{
		{Name: "John Smith", Account: "62123456789", Reference: "Rent Jan", Bank: "FNB", BranchCode: "250655"},
		{Name: "Acme Stores", Account: "40998877", Reference: "Acme Stores"},
	})
	if err := WriteFile(path, rows); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(records))
	}
	wantHeader := []string{
		"Beneficiary Account Name",
		"Beneficiary Bank",
		"Beneficiary Bank Account Number",
		"Beneficiary Branch Code",
		"Beneficiary Reference",
		"Statement Description",
		"Beneficiary Name",
		"Beneficiary Fax Number",
		"Beneficiary Email Address",
		"Beneficiary Cell Number",
	}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header = %q", records[0])
	}
	if records[1][2] != "62123456789" || records[1][3] != "250655" {
		t.Fatalf("row = %q", records[1])
	}
	if records[2][1] != "" || records[2][3] != "" {
		t.Fatalf("undetected bank columns must be empty: %q", records[2])
	}
}

func TestWriteFileLeavesNoTempOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the final rename fail.
	target := filepath.Join(dir, "blocked")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	err := WriteFile(target, FromRecipients([]recipients.Recipient{
		{Name: "John Smith", Account: "62123456789", Reference: "Rent Jan"},
	}))
	if err == nil {
		t.Fatalf("expected rename failure")
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("readdir: %v", readErr)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".beneficiaries-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}
