package daftar

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PersonSummary aggregates every record sharing a name.
type PersonSummary struct {
	Name        string
	Count       int
	TotalLira   decimal.Decimal
	TotalDollar decimal.Decimal
}

// Search derives per-name summaries for a query.
//
// The search is opt-in: an empty or all-whitespace query returns nil rather
// than "everyone". Otherwise it runs in two passes:
//
//  1. discovery: a case-insensitive substring match of query against each
//     record's name collects the distinct non-empty names among matches,
//     in order of first occurrence.
//  2. totals: for each discovered name, the entire record set is scanned
//     for records whose name equals it exactly (case-sensitive), so the
//     totals are authoritative for that spelling of the name, independent
//     of which rows happened to match the substring.
//
// Unparsable or empty amount fields contribute zero to the totals.
func Search(records []DebtRecord, query string) []PersonSummary {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var names []string
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Name == "" || !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}

	summaries := make([]PersonSummary, 0, len(names))
	for _, name := range names {
		s := PersonSummary{Name: name}
		for _, r := range records {
			if r.Name != name {
				continue
			}
			s.Count++
			s.TotalLira = s.TotalLira.Add(ParseAmount(r.LiraDebt))
			s.TotalDollar = s.TotalDollar.Add(ParseAmount(r.DollarDebt))
		}
		summaries = append(summaries, s)
	}
	return summaries
}
