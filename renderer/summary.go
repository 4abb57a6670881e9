package renderer

import (
	"github.com/rsaleh/daftar"
)

// Currencies of the two amount columns.
const (
	liraCurrency   = "SYP"
	dollarCurrency = "USD"
)

// Summaries is the template view of the search results.
type Summaries struct {
	Query string
	Rows  []SummaryRow
}

// SummaryRow is one aggregated person.
type SummaryRow struct {
	Name   string
	Count  int
	Lira   string
	Dollar string
}

// SummariesMarkdown renders per-name search summaries to a markdown string.
func SummariesMarkdown(query string, summaries []daftar.PersonSummary) string {
	v := &Summaries{Query: query}
	for _, s := range summaries {
		v.Rows = append(v.Rows, SummaryRow{
			Name:   s.Name,
			Count:  s.Count,
			Lira:   daftar.M(s.TotalLira, liraCurrency).String(),
			Dollar: daftar.M(s.TotalDollar, dollarCurrency).String(),
		})
	}
	return renderTemplate("summaries", "summaries.md", nil, v)
}
