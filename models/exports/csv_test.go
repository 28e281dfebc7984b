package exports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleRecords() []TransactionRecord {
	madrid, _ := time.LoadLocation("Europe/Madrid")
	return []TransactionRecord{
		{
			ID:            1,
			Date:          time.Date(2025, 3, 15, 0, 0, 0, 0, madrid),
			Description:   "Venta marzo",
			CategoryName:  "Ventas",
			CategoryType:  "INCOME",
			Type:          "INCOME",
			Amount:        decimal.NewFromFloat(1210.50),
			PaymentMethod: "TRANSFER",
			Tags:          "cliente-a,marzo",
			CreatedAt:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Date:          time.Date(2025, 3, 20, 0, 0, 0, 0, madrid),
			Description:   "Alquiler oficina",
			CategoryName:  "Alquiler",
			CategoryType:  "EXPENSE",
			Type:          "EXPENSE",
			Amount:        decimal.NewFromFloat(800),
			PaymentMethod: "CARD",
			Tags:          "",
			CreatedAt:     time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC),
		},
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}
	return rows
}

func TestTransactionsCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := TransactionsCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}

	// the header line is a published contract; compare it verbatim
	want := "TransactionID,Date,Description,CategoryName,CategoryType,TransactionType,Amount,PaymentMethod,Tags,CreatedAt"
	got := strings.SplitN(buf.String(), "\n", 2)[0]
	got = strings.TrimRight(got, "\r")
	if got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestTransactionsCSVRows(t *testing.T) {
	var buf bytes.Buffer
	if err := TransactionsCSV(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	rows := parseCSV(t, buf.Bytes())
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	first := rows[1]
	if first[0] != "1" || first[1] != "2025-03-15" || first[6] != "1210.50" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[9] != "2025-03-15T10:30:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", first[9])
	}
}

func TestTransactionsCuratedCSVHeaderAndLabels(t *testing.T) {
	var buf bytes.Buffer
	if err := TransactionsCuratedCSV(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	rows := parseCSV(t, buf.Bytes())
	wantHeader := []string{"ID", "Fecha", "Tipo", "Categoría", "Monto", "Descripción", "Método de Pago", "Etiquetas", "Creado"}
	for i, name := range wantHeader {
		if rows[0][i] != name {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], name)
		}
	}

	if rows[1][2] != "Ingreso" {
		t.Errorf("income label = %q, want Ingreso", rows[1][2])
	}
	if rows[2][2] != "Gasto" {
		t.Errorf("expense label = %q, want Gasto", rows[2][2])
	}
	if rows[1][6] != "Transferencia" {
		t.Errorf("transfer label = %q, want Transferencia", rows[1][6])
	}
	if rows[2][6] != "Tarjeta" {
		t.Errorf("card label = %q, want Tarjeta", rows[2][6])
	}
}

func TestLabelMappings(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		code string
		want string
	}{
		{TransactionTypeLabel, "INCOME", "Ingreso"},
		{TransactionTypeLabel, "EXPENSE", "Gasto"},
		{PaymentMethodLabel, "CASH", "Efectivo"},
		{PaymentMethodLabel, "CARD", "Tarjeta"},
		{PaymentMethodLabel, "TRANSFER", "Transferencia"},
		{PaymentMethodLabel, "OTHER", "Otro"},
		// unmapped codes pass through unchanged
		{TransactionTypeLabel, "REFUND", "REFUND"},
		{PaymentMethodLabel, "BIZUM", "BIZUM"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.code); got != tt.want {
			t.Errorf("label(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestTransactionsAnalyticsCSVColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := TransactionsAnalyticsCSV(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	rows := parseCSV(t, buf.Bytes())
	header := rows[0]
	wantExtra := []string{"Year", "Month", "MonthName", "Quarter", "DayOfWeek", "DayOfWeekName", "IsIncome", "IsExpense", "AmountAbs"}
	base := len(PowerBIHeader)
	for i, name := range wantExtra {
		if header[base+i] != name {
			t.Errorf("header[%d] = %q, want %q", base+i, header[base+i], name)
		}
	}

	// 2025-03-15 is a Saturday in Q1
	first := rows[1]
	if first[base] != "2025" || first[base+1] != "3" || first[base+2] != "March" {
		t.Errorf("year/month columns wrong: %v", first[base:])
	}
	if first[base+3] != "1" {
		t.Errorf("quarter = %q, want 1", first[base+3])
	}
	if first[base+5] != "Saturday" {
		t.Errorf("day of week = %q, want Saturday", first[base+5])
	}
	if first[base+6] != "1" || first[base+7] != "0" {
		t.Errorf("income flags wrong: %v", first[base:])
	}
	if second := rows[2]; second[base+6] != "0" || second[base+7] != "1" {
		t.Errorf("expense flags wrong: %v", second[base:])
	}
}

func TestQuarterBoundaries(t *testing.T) {
	tests := []struct {
		month   time.Month
		quarter string
	}{
		{time.January, "1"}, {time.March, "1"},
		{time.April, "2"}, {time.June, "2"},
		{time.July, "3"}, {time.September, "3"},
		{time.October, "4"}, {time.December, "4"},
	}
	for _, tt := range tests {
		record := TransactionRecord{
			ID:     1,
			Date:   time.Date(2025, tt.month, 10, 0, 0, 0, 0, time.UTC),
			Type:   "INCOME",
			Amount: decimal.NewFromInt(1),
		}
		var buf bytes.Buffer
		if err := TransactionsAnalyticsCSV(&buf, []TransactionRecord{record}); err != nil {
			t.Fatal(err)
		}
		rows := parseCSV(t, buf.Bytes())
		if got := rows[1][len(PowerBIHeader)+3]; got != tt.quarter {
			t.Errorf("%s: quarter = %q, want %q", tt.month, got, tt.quarter)
		}
	}
}

func TestCuratedCSVRoundTrip(t *testing.T) {
	original := sampleRecords()

	var buf bytes.Buffer
	if err := TransactionsCuratedCSV(&buf, original); err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseCuratedCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != len(original) {
		t.Fatalf("got %d records, want %d", len(parsed), len(original))
	}

	for i, got := range parsed {
		want := original[i]
		if got.ID != want.ID {
			t.Errorf("record %d: ID = %d, want %d", i, got.ID, want.ID)
		}
		if !got.Amount.Equal(want.Amount) {
			t.Errorf("record %d: Amount = %s, want %s", i, got.Amount, want.Amount)
		}
		if got.Date.Format("2006-01-02") != want.Date.Format("2006-01-02") {
			t.Errorf("record %d: Date = %s, want %s", i, got.Date, want.Date)
		}
		if got.Type != want.Type {
			t.Errorf("record %d: Type = %q, want %q", i, got.Type, want.Type)
		}
		if got.CategoryName != want.CategoryName {
			t.Errorf("record %d: CategoryName = %q, want %q", i, got.CategoryName, want.CategoryName)
		}
		if got.PaymentMethod != want.PaymentMethod {
			t.Errorf("record %d: PaymentMethod = %q, want %q", i, got.PaymentMethod, want.PaymentMethod)
		}
	}
}

func TestParseCuratedCSVRejectsWrongHeader(t *testing.T) {
	data := "ID,Fecha,Tipo\n1,2025-01-01,Ingreso\n"
	if _, err := ParseCuratedCSV(strings.NewReader(data)); err == nil {
		t.Error("expected error for wrong header")
	}
}

// The buffered renderer must produce exactly the streamed bytes; the
// export handler serves its output with Content-Length set.
func TestRenderCSVMatchesStreamedOutput(t *testing.T) {
	records := sampleRecords()

	var streamed bytes.Buffer
	if err := TransactionsCSV(&streamed, records); err != nil {
		t.Fatal(err)
	}

	buffered, err := RenderCSV(TransactionsCSV, records)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buffered, streamed.Bytes()) {
		t.Error("RenderCSV output differs from the streamed writer")
	}
}
