package renderer

import (
	"strconv"

	"github.com/rsaleh/daftar"
)

// GridMarkdown renders the ledger grid to a markdown string. Unless all is
// set, fully empty slots are skipped to keep the output readable; the row
// index still refers to the slot's position in the fixed grid.
func GridMarkdown(d *daftar.AppData, all bool) string {
	g := &Grid{
		ExchangeRate: strconv.FormatFloat(d.Settings.ExchangeRate, 'f', -1, 64),
		RowCount:     len(d.Records),
		Headers:      d.Settings.ColumnNames,
	}
	for i, r := range d.Records {
		if !all && r.Name == "" && r.LiraDebt == "" && r.DollarDebt == "" && r.Category == "" && r.Date == "" {
			continue
		}
		g.Rows = append(g.Rows, GridRow{
			Index:    i,
			Name:     r.Name,
			Lira:     r.LiraDebt,
			Dollar:   r.DollarDebt,
			Category: r.Category,
			Date:     r.Date,
		})
	}
	return renderTemplate("grid", "grid.md", nil, g)
}
