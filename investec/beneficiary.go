// Package investec renders recipient records into Investec's fixed
// ten-column beneficiary-import CSV.
package investec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/recipients"
)

// refColumnWidth is the hard limit Investec imposes on the reference and
// statement-description columns. Longer values are cut, never ellipsized.
const refColumnWidth = 20

// Beneficiary is one output row. Field order matches the import template's
// required column order; gocsv writes the header from the tags.
type Beneficiary struct {
	AccountName          string `csv:"Beneficiary Account Name"`
	Bank                 string `csv:"Beneficiary Bank"`
	AccountNumber        string `csv:"Beneficiary Bank Account Number"`
	BranchCode           string `csv:"Beneficiary Branch Code"`
	Reference            string `csv:"Beneficiary Reference"`
	StatementDescription string `csv:"Statement Description"`
	Name                 string `csv:"Beneficiary Name"`
	Fax                  string `csv:"Beneficiary Fax Number"`
	Email                string `csv:"Beneficiary Email Address"`
	Cell                 string `csv:"Beneficiary Cell Number"`
}

// FromRecipient maps an extracted recipient onto the import columns.
// Account name and name both carry the extracted name; the statement
// description mirrors the reference, truncated independently; the fax,
// email and cell columns stay empty.
func FromRecipient(r recipients.Recipient) Beneficiary {
	return Beneficiary{
		AccountName:          r.Name,
		Bank:                 r.Bank,
		AccountNumber:        r.Account,
		BranchCode:           r.BranchCode,
		Reference:            truncate(r.Reference, refColumnWidth),
		StatementDescription: truncate(r.Reference, refColumnWidth),
		Name:                 r.Name,
	}
}

// FromRecipients maps a record list in order.
func FromRecipients(recs []recipients.Recipient) []Beneficiary {
	rows := make([]Beneficiary, len(recs))
	for i, r := range recs {
		rows[i] = FromRecipient(r)
	}
	return rows
}

// WriteFile writes the rows as CSV with a header row. The file is rendered
// to a temporary sibling and renamed over the target on success, so a
// failed run never leaves a partially written file behind.
func WriteFile(path string, rows []Beneficiary) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".beneficiaries-*.csv")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = gocsv.Marshal(&rows, tmp); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// truncate hard-cuts s to at most n runes with no added marker.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
