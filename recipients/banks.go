package recipients

import (
	"fmt"
	"sort"
	"strings"
)

// Bank pairs a display name with the universal branch code used for
// electronic payments.
type Bank struct {
	Name       string
	BranchCode string
}

// bankPrefixes maps account-number prefixes to banks. The table is ordered
// most-specific-first: "100" (Investec) must be checked before any
// overlapping shorter prefix, so matching walks the slice in order and an
// exact-key map cannot express it.
var bankPrefixes = []struct {
	Prefix string
	Bank   Bank
}{
	{"100", Bank{"Investec", "580105"}},
	{"60", Bank{"FNB", "250655"}},
	{"62", Bank{"FNB", "250655"}},
	{"63", Bank{"FNB", "250655"}},
	{"10", Bank{"Standard Bank", "051001"}},
	{"11", Bank{"Standard Bank", "051001"}},
	{"19", Bank{"Nedbank", "198765"}},
	{"4", Bank{"ABSA", "632005"}},
	{"1", Bank{"Capitec", "470010"}},
}

// DetectBank resolves an account number to a bank by numeric prefix. The
// zero Bank is returned when no prefix matches; callers leave the columns
// empty for manual completion in that case.
func DetectBank(account string) Bank {
	for _, entry := range bankPrefixes {
		if strings.HasPrefix(account, entry.Prefix) {
			return entry.Bank
		}
	}
	return Bank{}
}

// BankByName resolves a bank by its display name, case-insensitively, for
// the default-bank override. The error lists the known banks so a typo on
// the command line is self-explanatory.
func BankByName(name string) (Bank, error) {
	for _, entry := range bankPrefixes {
		if strings.EqualFold(entry.Bank.Name, name) {
			return entry.Bank, nil
		}
	}
	return Bank{}, fmt.Errorf("unknown bank %q (known: %s)", name, strings.Join(KnownBanks(), ", "))
}

// KnownBanks returns the distinct bank names in the prefix table, sorted.
func KnownBanks() []string {
	seen := make(map[string]bool)
	var names []string
	for _, entry := range bankPrefixes {
		if !seen[entry.Bank.Name] {
			seen[entry.Bank.Name] = true
			names = append(names, entry.Bank.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ApplyBank stamps every record with the detected (or forced) bank. With
// detect enabled each account is resolved individually; with a non-zero
// forced bank every record receives that pair; otherwise records pass
// through untouched.
func ApplyBank(recs []Recipient, detect bool, forced Bank) {
	for i := range recs {
		switch {
		case forced != (Bank{}):
			recs[i].Bank = forced.Name
			recs[i].BranchCode = forced.BranchCode
		case detect:
			b := DetectBank(recs[i].Account)
			recs[i].Bank = b.Name
			recs[i].BranchCode = b.BranchCode
		}
	}
}
