package daftar

import (
	"fmt"
	"testing"
)

func TestDefaultAppData(t *testing.T) {
	d := DefaultAppData()

	if got := len(d.Records); got != RowCount {
		t.Fatalf("DefaultAppData() has %d records, want %d", got, RowCount)
	}
	if got := d.Records[0].ID; got != "row-0" {
		t.Errorf("first record id = %q, want %q", got, "row-0")
	}
	if got := d.Records[RowCount-1].ID; got != "row-199" {
		t.Errorf("last record id = %q, want %q", got, "row-199")
	}
	for i, r := range d.Records {
		if r.Name != "" || r.LiraDebt != "" || r.DollarDebt != "" || r.Category != "" || r.Date != "" {
			t.Fatalf("record %d is not empty: %+v", i, r)
		}
	}
	if got := d.Settings.ExchangeRate; got != DefaultExchangeRate {
		t.Errorf("default exchange rate = %v, want %v", got, DefaultExchangeRate)
	}
	if got := len(d.Settings.ColumnNames); got != ColumnCount {
		t.Errorf("default column names count = %d, want %d", got, ColumnCount)
	}
	if d.Locked() {
		t.Error("default state is locked, want unlocked")
	}
}

func TestNormalize_PadsShortRecordSet(t *testing.T) {
	// A state from an older version with fewer rows must be padded back to
	// the fixed count, never truncated.
	d := &AppData{
		Records: []DebtRecord{
			{ID: "row-0", Name: "Ali", LiraDebt: "100"},
			{ID: "row-1"},
		},
		Settings: Settings{ExchangeRate: 5000, ColumnNames: []string{"a", "b", "c", "d", "e"}},
	}
	d.Normalize()

	if got := len(d.Records); got != RowCount {
		t.Fatalf("after Normalize, %d records, want %d", got, RowCount)
	}
	// Existing rows are untouched.
	if d.Records[0].Name != "Ali" || d.Records[0].LiraDebt != "100" {
		t.Errorf("record 0 modified by Normalize: %+v", d.Records[0])
	}
	// Padded rows get synthetic ids, counted over the padding itself.
	if got := d.Records[2].ID; got != "extra-0" {
		t.Errorf("first padded record id = %q, want %q", got, "extra-0")
	}
	if got := d.Records[RowCount-1].ID; got != fmt.Sprintf("extra-%d", RowCount-3) {
		t.Errorf("last padded record id = %q, want %q", got, fmt.Sprintf("extra-%d", RowCount-3))
	}
	if d.Settings.ExchangeRate != 5000 {
		t.Errorf("exchange rate changed by Normalize: %v", d.Settings.ExchangeRate)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	d := DefaultAppData()
	d.Normalize()
	if got := len(d.Records); got != RowCount {
		t.Fatalf("Normalize on a full state grew it to %d records", got)
	}
	if got := len(d.Settings.ColumnNames); got != ColumnCount {
		t.Fatalf("Normalize on a full state grew labels to %d", got)
	}
}

func TestNormalize_RepairsSettings(t *testing.T) {
	d := &AppData{}
	d.Normalize()

	if got := len(d.Records); got != RowCount {
		t.Fatalf("after Normalize, %d records, want %d", got, RowCount)
	}
	if got := len(d.Settings.ColumnNames); got != ColumnCount {
		t.Fatalf("after Normalize, %d labels, want %d", got, ColumnCount)
	}
	if got := d.Settings.ExchangeRate; got != DefaultExchangeRate {
		t.Errorf("after Normalize, exchange rate %v, want default %v", got, DefaultExchangeRate)
	}
}
