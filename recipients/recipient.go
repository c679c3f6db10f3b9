// Package recipients turns reconstructed table rows into typed recipient
// records: pattern-based field extraction, bank identification by
// account-number prefix, and duplicate removal.
package recipients

// Recipient is one payment recipient extracted from the FNB export.
type Recipient struct {
	// Name is the beneficiary display name, trimmed and non-empty.
	Name string
	// Account is the account number as a digit string of length 8-11.
	// Leading zeros are significant, so it is never parsed as an integer.
	Account string
	// Reference is the recipient's payment reference. Rows without one fall
	// back to the name. Truncation to the output column width happens at
	// render time, never here.
	Reference string
	// Bank and BranchCode are set together by bank detection or the
	// default-bank override, or left empty for manual completion.
	Bank       string
	BranchCode string
}
