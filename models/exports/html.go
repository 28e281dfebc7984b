package exports

import (
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// ReportHTML writes a printable report document. The /export/pdf route
// serves this HTML; clients print it to PDF from the browser.

type reportRow struct {
	Date        string
	Description string
	Category    string
	Type        string
	Method      string
	Amount      string
	IsExpense   bool
}

type reportData struct {
	GeneratedAt  string
	TotalIncome  string
	TotalExpense string
	Balance      string
	BalanceClass string
	Rows         []reportRow
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Informe de Transacciones</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 40px; color: #222; }
h1 { font-size: 22px; margin-bottom: 4px; }
.meta { color: #666; font-size: 12px; margin-bottom: 24px; }
.summary { display: flex; gap: 16px; margin-bottom: 24px; }
.summary div { border: 1px solid #ddd; border-radius: 6px; padding: 12px 20px; }
.summary .label { font-size: 11px; text-transform: uppercase; color: #888; }
.summary .value { font-size: 18px; font-weight: bold; }
.positive { color: #1a7f37; }
.negative { color: #c62828; }
table { border-collapse: collapse; width: 100%; font-size: 13px; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
th { background: #f5f5f5; }
td.amount { text-align: right; }
</style>
</head>
<body>
<h1>Informe de Transacciones</h1>
<p class="meta">Generado: {{.GeneratedAt}}</p>
<div class="summary">
  <div><div class="label">Ingresos</div><div class="value positive">{{.TotalIncome}} €</div></div>
  <div><div class="label">Gastos</div><div class="value negative">{{.TotalExpense}} €</div></div>
  <div><div class="label">Balance</div><div class="value {{.BalanceClass}}">{{.Balance}} €</div></div>
</div>
<table>
<thead>
<tr><th>Fecha</th><th>Descripción</th><th>Categoría</th><th>Tipo</th><th>Método</th><th>Monto</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Date}}</td><td>{{.Description}}</td><td>{{.Category}}</td><td>{{.Type}}</td><td>{{.Method}}</td><td class="amount{{if .IsExpense}} negative{{end}}">{{.Amount}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

// ReportHTML renders the printable transactions report.
func ReportHTML(w io.Writer, records []TransactionRecord, now time.Time) error {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	rows := make([]reportRow, 0, len(records))

	for _, r := range records {
		isExpense := r.Type == "EXPENSE"
		if isExpense {
			totalExpense = totalExpense.Add(r.Amount)
		} else {
			totalIncome = totalIncome.Add(r.Amount)
		}
		rows = append(rows, reportRow{
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
			Category:    r.CategoryName,
			Type:        TransactionTypeLabel(r.Type),
			Method:      PaymentMethodLabel(r.PaymentMethod),
			Amount:      r.Amount.StringFixed(2),
			IsExpense:   isExpense,
		})
	}

	balance := totalIncome.Sub(totalExpense)
	balanceClass := "positive"
	if balance.IsNegative() {
		balanceClass = "negative"
	}

	return reportTemplate.Execute(w, reportData{
		GeneratedAt:  now.Format("2006-01-02 15:04:05"),
		TotalIncome:  totalIncome.StringFixed(2),
		TotalExpense: totalExpense.StringFixed(2),
		Balance:      balance.StringFixed(2),
		BalanceClass: balanceClass,
		Rows:         rows,
	})
}
