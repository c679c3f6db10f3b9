package recipients

// Dedupe removes repeated captures of the same recipient. The export
// repeats entries across pages, so the account number is the identity key;
// the first occurrence wins and surviving records keep their first-seen
// order. Running Dedupe on its own output is a no-op.
func Dedupe(recs []Recipient) []Recipient {
	seen := make(map[string]bool, len(recs))
	out := make([]Recipient, 0, len(recs))
	for _, rec := range recs {
		if seen[rec.Account] {
			continue
		}
		seen[rec.Account] = true
		out = append(out, rec)
	}
	return out
}
