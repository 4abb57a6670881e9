package daftar

import "fmt"

// RowCount is the fixed number of rows in the ledger grid. Slots are never
// removed, only cleared or overwritten.
const RowCount = 200

// DefaultExchangeRate is the rate substituted whenever the user input cannot
// be parsed as a number.
const DefaultExchangeRate = 10000

// ColumnCount is the number of editable column labels.
const ColumnCount = 5

// defaultColumnNames are the original display labels (name, lira, dollar,
// category, date).
var defaultColumnNames = [ColumnCount]string{"الاسم", "ليرة", "دولار", "الصنف", "التاريخ"}

// DebtRecord is a single row of the ledger grid.
//
// Amounts are kept as the raw text the user typed, including the empty
// string. They are interpreted as numbers only at aggregation time, see
// [ParseAmount].
type DebtRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LiraDebt   string `json:"liraDebt"`
	DollarDebt string `json:"dollarDebt"`
	Category   string `json:"category"`
	Date       string `json:"date"` // ISO date (YYYY-MM-DD) or empty
}

// clear resets every field except the id, returning the slot to its unused
// state.
func (r *DebtRecord) clear() {
	r.Name = ""
	r.LiraDebt = ""
	r.DollarDebt = ""
	r.Category = ""
	r.Date = ""
}

// Settings holds the mutable application settings persisted alongside the
// records.
type Settings struct {
	ExchangeRate float64  `json:"exchangeRate"`
	ColumnNames  []string `json:"columnNames"`
	Password     string   `json:"password,omitempty"` // plaintext, empty means unlocked
}

// AppData is the root aggregate: the whole persisted unit. There is no
// partial persistence.
type AppData struct {
	Records  []DebtRecord `json:"records"`
	Settings Settings     `json:"settings"`
}

// DefaultAppData synthesizes the initial state: RowCount empty records with
// sequential ids and default settings.
func DefaultAppData() *AppData {
	records := make([]DebtRecord, RowCount)
	for i := range records {
		records[i].ID = fmt.Sprintf("row-%d", i)
	}
	names := make([]string, ColumnCount)
	copy(names, defaultColumnNames[:])
	return &AppData{
		Records: records,
		Settings: Settings{
			ExchangeRate: DefaultExchangeRate,
			ColumnNames:  names,
		},
	}
}

// Normalize repairs a loaded or imported state so that the fixed-size
// contract holds again: the record slice is padded (never truncated) to
// exactly RowCount rows, missing column labels are filled from the
// defaults, and a zero exchange rate falls back to the default.
// Normalize is idempotent.
func (d *AppData) Normalize() {
	// Padding ids count the padded rows, not the absolute position.
	for i := 0; len(d.Records) < RowCount; i++ {
		d.Records = append(d.Records, DebtRecord{ID: fmt.Sprintf("extra-%d", i)})
	}
	for i := len(d.Settings.ColumnNames); i < ColumnCount; i++ {
		d.Settings.ColumnNames = append(d.Settings.ColumnNames, defaultColumnNames[i])
	}
	if d.Settings.ExchangeRate <= 0 {
		d.Settings.ExchangeRate = DefaultExchangeRate
	}
}

// clone returns a deep copy of the state, so that transformations can
// produce a new snapshot without touching the prior one.
func (d *AppData) clone() *AppData {
	c := &AppData{
		Records:  make([]DebtRecord, len(d.Records)),
		Settings: d.Settings,
	}
	copy(c.Records, d.Records)
	c.Settings.ColumnNames = make([]string, len(d.Settings.ColumnNames))
	copy(c.Settings.ColumnNames, d.Settings.ColumnNames)
	return c
}
