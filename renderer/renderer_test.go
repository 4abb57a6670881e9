package renderer

import (
	"strings"
	"testing"

	"github.com/rsaleh/daftar"
	"github.com/shopspring/decimal"
)

func TestGridMarkdown(t *testing.T) {
	d := daftar.DefaultAppData()
	var err error
	if d, err = d.UpdateRecordField(3, daftar.FieldName, "Ali"); err != nil {
		t.Fatal(err)
	}
	if d, err = d.UpdateRecordField(3, daftar.FieldLira, "1500"); err != nil {
		t.Fatal(err)
	}

	md := GridMarkdown(d, false)
	if strings.Contains(md, "error") {
		t.Fatalf("GridMarkdown returned a template error:\n%s", md)
	}
	if !strings.Contains(md, "| 3 | Ali | 1500 |") {
		t.Errorf("grid misses the populated row:\n%s", md)
	}
	// Only one data row (one line beyond the header): empty slots are skipped.
	if got := strings.Count(md, "\n| ") - 1; got != 1 {
		t.Errorf("grid has %d data rows, want 1:\n%s", got, md)
	}
	// Column headers come from the settings.
	if !strings.Contains(md, "الاسم") {
		t.Errorf("grid misses the column labels:\n%s", md)
	}
}

func TestGridMarkdown_All(t *testing.T) {
	md := GridMarkdown(daftar.DefaultAppData(), true)
	if got := strings.Count(md, "\n| ") - 1; got != daftar.RowCount {
		t.Errorf("full grid has %d data rows, want %d", got, daftar.RowCount)
	}
}

func TestSummariesMarkdown(t *testing.T) {
	summaries := []daftar.PersonSummary{
		{Name: "Ali", Count: 2, TotalLira: decimal.NewFromInt(150), TotalDollar: decimal.NewFromInt(3)},
	}
	md := SummariesMarkdown("ali", summaries)
	if strings.Contains(md, "error") {
		t.Fatalf("SummariesMarkdown returned a template error:\n%s", md)
	}
	for _, want := range []string{"Ali", "| 2 |", "ali"} {
		if !strings.Contains(md, want) {
			t.Errorf("summaries miss %q:\n%s", want, md)
		}
	}
}

func TestSummariesMarkdown_Empty(t *testing.T) {
	md := SummariesMarkdown("zzz", nil)
	if !strings.Contains(md, "No matching name") {
		t.Errorf("empty summaries miss the placeholder:\n%s", md)
	}
}
