package exports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReportHTMLSummary(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ReportHTML(&buf, sampleRecords(), now); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	if !strings.Contains(html, "Generado: 2025-04-01 12:00:00") {
		t.Error("missing generation timestamp")
	}
	if !strings.Contains(html, "1210.50") {
		t.Error("missing income total")
	}
	if !strings.Contains(html, "800.00") {
		t.Error("missing expense total")
	}
	// income 1210.50 - expense 800.00
	if !strings.Contains(html, "410.50") {
		t.Error("missing balance")
	}
	if !strings.Contains(html, `class="value positive">410.50`) {
		t.Error("positive balance not rendered green")
	}
	if !strings.Contains(html, "Venta marzo") || !strings.Contains(html, "Alquiler oficina") {
		t.Error("missing table rows")
	}
}

func TestReportHTMLNegativeBalance(t *testing.T) {
	records := []TransactionRecord{
		{
			ID:            1,
			Date:          time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Description:   "Compra",
			CategoryName:  "Suministros",
			Type:          "EXPENSE",
			Amount:        decimal.NewFromInt(300),
			PaymentMethod: "CASH",
		},
	}

	var buf bytes.Buffer
	if err := ReportHTML(&buf, records, time.Now()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `class="value negative">-300.00`) {
		t.Error("negative balance not rendered red")
	}
}

func TestReportHTMLEscapesContent(t *testing.T) {
	records := []TransactionRecord{
		{
			ID:            1,
			Date:          time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Description:   "<script>alert(1)</script>",
			CategoryName:  "Ventas",
			Type:          "INCOME",
			Amount:        decimal.NewFromInt(10),
			PaymentMethod: "CASH",
		},
	}

	var buf bytes.Buffer
	if err := ReportHTML(&buf, records, time.Now()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("description not escaped")
	}
}
