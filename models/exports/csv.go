// Package exports renders transaction data for the BI integrations:
// raw/curated/analytics CSV, XLSX, JSON and a printable HTML report.
package exports

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the flat projection the exporters work on. Handlers
// map store rows into it so this package stays independent of the ORM.
type TransactionRecord struct {
	ID            int
	Date          time.Time
	Description   string
	CategoryName  string
	CategoryType  string
	Type          string
	Amount        decimal.Decimal
	PaymentMethod string
	Tags          string
	CreatedAt     time.Time
}

// PowerBIHeader is the contract with the published Power BI dashboards.
// Changing any column name or position breaks their refresh.
var PowerBIHeader = []string{
	"TransactionID", "Date", "Description", "CategoryName", "CategoryType",
	"TransactionType", "Amount", "PaymentMethod", "Tags", "CreatedAt",
}

// CuratedHeader is the Spanish-labelled export consumed by spreadsheets.
var CuratedHeader = []string{
	"ID", "Fecha", "Tipo", "Categoría", "Monto", "Descripción",
	"Método de Pago", "Etiquetas", "Creado",
}

var transactionTypeLabels = map[string]string{
	"INCOME":  "Ingreso",
	"EXPENSE": "Gasto",
}

var paymentMethodLabels = map[string]string{
	"CASH":     "Efectivo",
	"CARD":     "Tarjeta",
	"TRANSFER": "Transferencia",
	"OTHER":    "Otro",
}

// label returns the Spanish label for a code, or the code itself when no
// mapping exists so new enum values never break the export.
func label(mapping map[string]string, code string) string {
	if v, ok := mapping[code]; ok {
		return v
	}
	return code
}

// TransactionTypeLabel maps INCOME/EXPENSE to the Spanish display label.
func TransactionTypeLabel(code string) string {
	return label(transactionTypeLabels, code)
}

// PaymentMethodLabel maps payment method codes to the Spanish display label.
func PaymentMethodLabel(code string) string {
	return label(paymentMethodLabels, code)
}

// TransactionsCSV writes the raw Power BI feed.
func TransactionsCSV(w io.Writer, records []TransactionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PowerBIHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Date.Format("2006-01-02"),
			r.Description,
			r.CategoryName,
			r.CategoryType,
			r.Type,
			r.Amount.StringFixed(2),
			r.PaymentMethod,
			r.Tags,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func curatedRow(r TransactionRecord) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Date.Format("2006-01-02"),
		TransactionTypeLabel(r.Type),
		r.CategoryName,
		r.Amount.StringFixed(2),
		r.Description,
		PaymentMethodLabel(r.PaymentMethod),
		r.Tags,
		r.CreatedAt.Format(time.RFC3339),
	}
}

// TransactionsCuratedCSV writes the Spanish-labelled export.
func TransactionsCuratedCSV(w io.Writer, records []TransactionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CuratedHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(curatedRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// AnalyticsHeader extends the raw feed with precomputed date and sign
// columns so dashboards avoid recomputing them per refresh.
var AnalyticsHeader = append(append([]string{}, PowerBIHeader...),
	"Year", "Month", "MonthName", "Quarter", "DayOfWeek", "DayOfWeekName",
	"IsIncome", "IsExpense", "AmountAbs",
)

// TransactionsAnalyticsCSV writes the raw feed plus calculated columns.
func TransactionsAnalyticsCSV(w io.Writer, records []TransactionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AnalyticsHeader); err != nil {
		return err
	}
	for _, r := range records {
		month := int(r.Date.Month())
		quarter := int(math.Ceil(float64(month) / 3))
		isIncome := "0"
		isExpense := "0"
		if r.Type == "INCOME" {
			isIncome = "1"
		}
		if r.Type == "EXPENSE" {
			isExpense = "1"
		}
		row := []string{
			strconv.Itoa(r.ID),
			r.Date.Format("2006-01-02"),
			r.Description,
			r.CategoryName,
			r.CategoryType,
			r.Type,
			r.Amount.StringFixed(2),
			r.PaymentMethod,
			r.Tags,
			r.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(r.Date.Year()),
			strconv.Itoa(month),
			r.Date.Month().String(),
			strconv.Itoa(quarter),
			strconv.Itoa(int(r.Date.Weekday())),
			r.Date.Weekday().String(),
			isIncome,
			isExpense,
			r.Amount.Abs().StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TransactionsJSON writes the records as a JSON array.
func TransactionsJSON(w io.Writer, records []TransactionRecord) error {
	type jsonRecord struct {
		ID            int    `json:"id"`
		Date          string `json:"date"`
		Description   string `json:"description"`
		CategoryName  string `json:"category_name"`
		CategoryType  string `json:"category_type"`
		Type          string `json:"type"`
		Amount        string `json:"amount"`
		PaymentMethod string `json:"payment_method"`
		Tags          string `json:"tags"`
		CreatedAt     string `json:"created_at"`
	}
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		out = append(out, jsonRecord{
			ID:            r.ID,
			Date:          r.Date.Format("2006-01-02"),
			Description:   r.Description,
			CategoryName:  r.CategoryName,
			CategoryType:  r.CategoryType,
			Type:          r.Type,
			Amount:        r.Amount.StringFixed(2),
			PaymentMethod: r.PaymentMethod,
			Tags:          r.Tags,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

func labelToCode(mapping map[string]string, value string) string {
	for code, lbl := range mapping {
		if strings.EqualFold(lbl, value) {
			return code
		}
	}
	return value
}

// ParseCuratedCSV reads a curated export back into records, inverting the
// Spanish labels. Round-trips preserve amount, day-precision date, type,
// category name and payment method.
func ParseCuratedCSV(r io.Reader) ([]TransactionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CuratedHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, errors.New("empty csv")
	}
	for i, name := range CuratedHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected column %q, want %q", header[i], name)
		}
	}

	var records []TransactionRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		id, _ := strconv.Atoi(row[0])
		date, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", line, row[1])
		}
		amount, err := decimal.NewFromString(row[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q", line, row[4])
		}
		createdAt, err := time.Parse(time.RFC3339, row[8])
		if err != nil {
			createdAt = time.Time{}
		}

		records = append(records, TransactionRecord{
			ID:            id,
			Date:          date,
			Type:          labelToCode(transactionTypeLabels, row[2]),
			CategoryName:  row[3],
			Amount:        amount,
			Description:   row[5],
			PaymentMethod: labelToCode(paymentMethodLabels, row[6]),
			Tags:          row[7],
			CreatedAt:     createdAt,
		})
	}
	return records, nil
}

// RenderCSV runs an exporter into a buffer; handlers use it to set
// Content-Length before streaming.
func RenderCSV(render func(io.Writer, []TransactionRecord) error, records []TransactionRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
