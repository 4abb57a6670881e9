package renderer

// Grid is the template view of the ledger grid.
type Grid struct {
	ExchangeRate string
	RowCount     int
	Headers      []string
	Rows         []GridRow
}

// GridRow is a single rendered ledger row.
type GridRow struct {
	Index    int
	Name     string
	Lira     string
	Dollar   string
	Category string
	Date     string
}
