package recipients

import "testing"

func TestDetectBank(t *testing.T) {
	tests := []struct {
		account string
		name    string
		branch  string
	}{
		{"62123456789", "FNB", "250655"},
		{"63000111222", "FNB", "250655"},
		{"10012345678", "Investec", "580105"},
		{"10987654321", "Standard Bank", "051001"},
		{"40998877", "ABSA", "632005"},
		{"19123456789", "Nedbank", "198765"},
		{"1598765432", "Capitec", "470010"},
		{"90123456", "", ""},
	}
	for _, tt := range tests {
		got := DetectBank(tt.account)
		if got.Name != tt.name || got.BranchCode != tt.branch {
			t.Fatalf("DetectBank(%q) = %+v, want %s/%s", tt.account, got, tt.name, tt.branch)
		}
	}
}

func TestDetectBankPrefixPrecedence(t *testing.T) {
	// "100" is more specific than "10" and "1"; it must win even though all
	// three match.
	got := DetectBank("10012345678")
	if got.Name != "Investec" || got.BranchCode != "580105" {
		t.Fatalf("DetectBank(100...) = %+v, want Investec/580105", got)
	}
}

func TestBankByName(t *testing.T) {
	bank, err := BankByName("ABSA")
	if err != nil {
		t.Fatalf("BankByName(ABSA) error = %v", err)
	}
	if bank.BranchCode != "632005" {
		t.Fatalf("branch = %q, want 632005", bank.BranchCode)
	}

	if bank, err := BankByName("fnb"); err != nil || bank.BranchCode != "250655" {
		t.Fatalf("lookup should be case-insensitive, got %+v, %v", bank, err)
	}

	if _, err := BankByName("Monopoly Bank"); err == nil {
		t.Fatalf("expected error for unknown bank")
	}
}

func TestApplyBankDetect(t *testing.T) {
	recs := []Recipient{
		{Name: "John Smith", Account: "62123456789"},
		{Name: "Unknown Co", Account: "90123456"},
	}
	ApplyBank(recs, true, Bank{})
	if recs[0].Bank != "FNB" || recs[0].BranchCode != "250655" {
		t.Fatalf("detected = %+v", recs[0])
	}
	if recs[1].Bank != "" || recs[1].BranchCode != "" {
		t.Fatalf("undetected prefixes must leave bank fields empty: %+v", recs[1])
	}
}

func TestApplyBankForced(t *testing.T) {
	recs := []Recipient{
		{Name: "John Smith", Account: "62123456789"},
		{Name: "Acme Stores", Account: "10012345678"},
	}
	forced, err := BankByName("ABSA")
	if err != nil {
		t.Fatalf("BankByName(ABSA) error = %v", err)
	}
	ApplyBank(recs, false, forced)
	for _, r := range recs {
		if r.Bank != "ABSA" || r.BranchCode != "632005" {
			t.Fatalf("forced bank not applied: %+v", r)
		}
	}
}

func TestApplyBankDisabled(t *testing.T) {
	recs := []Recipient{{Name: "John Smith", Account: "62123456789"}}
	ApplyBank(recs, false, Bank{})
	if recs[0].Bank != "" || recs[0].BranchCode != "" {
		t.Fatalf("bank fields must stay empty for manual completion: %+v", recs[0])
	}
}
