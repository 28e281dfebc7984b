package exports

import (
	"testing"
	"time"
)

func TestDemoTransactions(t *testing.T) {
	records := DemoTransactions(50)
	if len(records) != 50 {
		t.Fatalf("got %d records, want 50", len(records))
	}

	knownCategories := make(map[string]bool)
	for _, c := range demoCategories {
		knownCategories[c.Name] = true
	}
	cutoff := time.Now().AddDate(0, 0, -31)

	for i, r := range records {
		if !knownCategories[r.CategoryName] {
			t.Errorf("record %d: unknown category %q", i, r.CategoryName)
		}
		if r.Type != "INCOME" && r.Type != "EXPENSE" {
			t.Errorf("record %d: bad type %q", i, r.Type)
		}
		if r.Type != r.CategoryType {
			t.Errorf("record %d: type %q does not match category type %q", i, r.Type, r.CategoryType)
		}
		if !r.Amount.IsPositive() {
			t.Errorf("record %d: amount %s not positive", i, r.Amount)
		}
		if r.Date.Before(cutoff) || r.Date.After(time.Now()) {
			t.Errorf("record %d: date %s outside last 30 days", i, r.Date)
		}
	}
}

func TestDemoTransactionsExportable(t *testing.T) {
	records := DemoTransactions(5)
	data, err := RenderCSV(TransactionsCSV, records)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("empty csv output")
	}
}
