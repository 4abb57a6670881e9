package daftar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStorage_SaveLoad(t *testing.T) {
	s := NewStorage(t.TempDir())

	d := DefaultAppData()
	var err error
	if d, err = d.UpdateRecordField(5, FieldName, "Nadia"); err != nil {
		t.Fatal(err)
	}
	d = d.SetExchangeRate("11500")

	if err := s.Save(d); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}
	got := s.Load()
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("Load() after Save() mismatch (-want +got):\n%s", diff)
	}
}

func TestStorage_LoadMissingSlot(t *testing.T) {
	s := NewStorage(t.TempDir())
	got := s.Load()
	if diff := cmp.Diff(DefaultAppData(), got); diff != "" {
		t.Errorf("Load() on an empty dir is not the default state (-want +got):\n%s", diff)
	}
}

func TestStorage_LoadCorruptSlot(t *testing.T) {
	// A corrupt blob is equivalent to no blob: silent recovery, never an
	// error.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "daftar.json"), []byte("{{{ not json"), 0644); err != nil {
		t.Fatal(err)
	}
	got := NewStorage(dir).Load()
	if got := len(got.Records); got != RowCount {
		t.Fatalf("Load() on corrupt slot has %d records, want %d", got, RowCount)
	}
	if diff := cmp.Diff(DefaultAppData(), got); diff != "" {
		t.Errorf("Load() on corrupt slot is not the default state (-want +got):\n%s", diff)
	}
}

func TestStorage_LoadRecordsOnlySlot(t *testing.T) {
	// A slot written by an older version may lack the settings object
	// entirely. The records survive; only the missing settings are
	// repaired to the defaults.
	dir := t.TempDir()
	blob := `{"records":[{"id":"row-0","name":"Ali","liraDebt":"100","dollarDebt":"","category":"","date":""}]}`
	if err := os.WriteFile(filepath.Join(dir, "daftar.json"), []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}
	got := NewStorage(dir).Load()
	if got.Records[0].Name != "Ali" || got.Records[0].LiraDebt != "100" {
		t.Errorf("records-only slot lost record 0: %+v", got.Records[0])
	}
	if n := len(got.Records); n != RowCount {
		t.Fatalf("records-only slot not padded: %d rows", n)
	}
	if got.Settings.ExchangeRate != DefaultExchangeRate {
		t.Errorf("missing settings not defaulted: rate %v", got.Settings.ExchangeRate)
	}
	if n := len(got.Settings.ColumnNames); n != ColumnCount {
		t.Errorf("missing settings not defaulted: %d labels", n)
	}
}

func TestStorage_LoadRepairsShortSlot(t *testing.T) {
	dir := t.TempDir()
	blob := `{"records":[{"id":"row-0","name":"Ali","liraDebt":"1","dollarDebt":"","category":"","date":""}],"settings":{"exchangeRate":9000,"columnNames":["a","b","c","d","e"]}}`
	if err := os.WriteFile(filepath.Join(dir, "daftar.json"), []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}
	got := NewStorage(dir).Load()
	if n := len(got.Records); n != RowCount {
		t.Fatalf("Load() did not repair a short record set: %d rows", n)
	}
	if got.Records[0].Name != "Ali" {
		t.Errorf("repair lost record 0: %+v", got.Records[0])
	}
	if got.Settings.ExchangeRate != 9000 {
		t.Errorf("repair lost settings: rate %v", got.Settings.ExchangeRate)
	}
}

func TestStorage_Clear(t *testing.T) {
	s := NewStorage(t.TempDir())
	if err := s.Save(DefaultAppData().SetPassword("k")); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() returned an unexpected error: %v", err)
	}
	// Clearing an already-empty slot is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() on an empty slot returned an error: %v", err)
	}
	// After a clear, Load yields the synthesized default.
	if got := s.Load(); got.Locked() {
		t.Error("Load() after Clear() still carries the password")
	}
}
