package daftar

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSearch(t *testing.T) {
	records := []DebtRecord{
		{ID: "row-0", Name: "Ali", LiraDebt: "100", DollarDebt: "2"},
		{ID: "row-1", Name: "ali", LiraDebt: "50"},
		{ID: "row-2", Name: "Sam", LiraDebt: "10"},
		{ID: "row-3", Name: "Salim", LiraDebt: "x", DollarDebt: ""},
		{ID: "row-4", Name: "Ali", DollarDebt: "3.5"},
		{ID: "row-5"},
	}

	testCases := []struct {
		name  string
		query string
		want  []PersonSummary
	}{
		{
			// The discovery pass is case-insensitive substring, so both
			// spellings of Ali surface, in first-occurrence order. The
			// totals pass is exact on each discovered spelling.
			name:  "case insensitive discovery, exact totals",
			query: "ali",
			want: []PersonSummary{
				{Name: "Ali", Count: 2, TotalLira: dec("100"), TotalDollar: dec("5.5")},
				{Name: "ali", Count: 1, TotalLira: dec("50"), TotalDollar: dec("0")},
				{Name: "Salim", Count: 1, TotalLira: dec("0"), TotalDollar: dec("0")},
			},
		},
		{
			name:  "single name",
			query: "sam",
			want: []PersonSummary{
				{Name: "Sam", Count: 1, TotalLira: dec("10"), TotalDollar: dec("0")},
			},
		},
		{
			name:  "no match",
			query: "zzz",
			want:  nil,
		},
		{
			name:  "empty query is opt-out",
			query: "",
			want:  nil,
		},
		{
			name:  "whitespace query is opt-out",
			query: "   ",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(records, tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("Search(%q) returned %d summaries, want %d: %+v", tc.query, len(got), len(tc.want), got)
			}
			for i, want := range tc.want {
				if got[i].Name != want.Name {
					t.Errorf("summary %d name = %q, want %q", i, got[i].Name, want.Name)
				}
				if got[i].Count != want.Count {
					t.Errorf("summary %d (%s) count = %d, want %d", i, want.Name, got[i].Count, want.Count)
				}
				if !got[i].TotalLira.Equal(want.TotalLira) {
					t.Errorf("summary %d (%s) totalLira = %s, want %s", i, want.Name, got[i].TotalLira, want.TotalLira)
				}
				if !got[i].TotalDollar.Equal(want.TotalDollar) {
					t.Errorf("summary %d (%s) totalDollar = %s, want %s", i, want.Name, got[i].TotalDollar, want.TotalDollar)
				}
			}
		})
	}
}

func TestSearch_BoundedByDistinctNames(t *testing.T) {
	d := DefaultAppData()
	var err error
	for i := 0; i < 10; i++ {
		if d, err = d.UpdateRecordField(i, FieldName, "Nour"); err != nil {
			t.Fatal(err)
		}
	}
	got := Search(d.Records, "nour")
	if len(got) != 1 {
		t.Fatalf("Search returned %d summaries, want 1", len(got))
	}
	if got[0].Count != 10 {
		t.Errorf("count = %d, want 10", got[0].Count)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
