package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID              int             `gorm:"primary_key" json:"id"`
	CompanyId       string          `gorm:"size:36;not null;uniqueIndex:idx_invoice_number" json:"company_id"`
	Series          string          `gorm:"size:10;not null;uniqueIndex:idx_invoice_number" json:"series"`
	Number          string          `gorm:"size:20;not null;uniqueIndex:idx_invoice_number" json:"number"`
	CustomerName    string          `gorm:"size:200;not null" json:"customer_name"`
	CustomerTaxId   string          `gorm:"size:20" json:"customer_tax_id"`
	CustomerPhone   string          `gorm:"size:20" json:"customer_phone"`
	CustomerAddress string          `gorm:"size:255" json:"customer_address"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	DueDate         time.Time       `json:"due_date"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"subtotal"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"tax_amount"`
	Total           decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"total"`
	Status          InvoiceStatus   `gorm:"size:10;not null" json:"status"`
	Notes           string          `gorm:"size:500" json:"notes"`
	LedgerEntryId   *int            `json:"ledger_entry_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewInvoice never carries number, tax amount or total; those are derived
// on the server on every write.
type NewInvoice struct {
	CompanyId         string          `json:"company_id" binding:"required"`
	Series            string          `json:"series"`
	CustomerName      string          `json:"customer_name" binding:"required"`
	CustomerTaxId     string          `json:"customer_tax_id"`
	CustomerPhone     string          `json:"customer_phone"`
	CustomerAddress   string          `json:"customer_address"`
	Date              string          `json:"date" binding:"required"`
	DueDate           string          `json:"due_date"`
	Subtotal          decimal.Decimal `json:"subtotal" binding:"required"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	Status            InvoiceStatus   `json:"status" binding:"omitempty,oneof=DRAFT ISSUED PAID CANCELLED"`
	Notes             string          `json:"notes"`
	CreateLedgerEntry bool            `json:"create_ledger_entry"`
}

const defaultInvoiceSeries = "FAC"

// status transitions allowed on update
var invoiceStatusFlow = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:     {InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusCancelled},
	InvoiceStatusIssued:    {InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusPaid:      {InvoiceStatusPaid},
	InvoiceStatusCancelled: {InvoiceStatusCancelled},
}

func validStatusTransition(from InvoiceStatus, to InvoiceStatus) bool {
	for _, allowed := range invoiceStatusFlow[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextDocumentNumber increments a zero-padded document number. Width stays
// at 3 until the sequence outgrows it ("999" rolls to "1000"). An empty or
// unparseable last number starts the sequence at "001".
func NextDocumentNumber(last string) string {
	last = strings.TrimSpace(last)
	n, err := strconv.Atoi(last)
	if err != nil || n < 0 {
		return "001"
	}
	width := len(last)
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("%0*d", width, n+1)
}

// nextInvoiceNumber reads the current highest number for (company, series)
// inside the caller's transaction. Longer numbers sort first so "1000"
// beats "999"; a plain MAX over the string column would not. Callers hold
// the company lock; the unique index on (company_id, series, number)
// backs this up.
func nextInvoiceNumber(tx *gorm.DB, companyId string, series string) (string, error) {
	var last string
	var numbers []string
	err := tx.Model(&Invoice{}).
		Where("company_id = ? AND series = ?", companyId, series).
		Order("LENGTH(number) DESC, number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil {
		return "", err
	}
	if len(numbers) > 0 {
		last = numbers[0]
	}
	return NextDocumentNumber(last), nil
}

func (input *NewInvoice) validate(ctx context.Context) (time.Time, time.Time, error) {
	if err := ValidateCompanyAccess(ctx, input.CompanyId); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !input.Subtotal.IsPositive() {
		return time.Time{}, time.Time{}, utils.NewValidationError("subtotal must be greater than zero")
	}
	if input.TaxRate.IsNegative() || input.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return time.Time{}, time.Time{}, utils.NewValidationError("tax rate must be between 0 and 100")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return time.Time{}, time.Time{}, utils.NewValidationError("customer name is required")
	}
	if input.CustomerPhone != "" {
		if err := utils.ValidatePhoneNumber(input.CustomerPhone, utils.CountryCode); err != nil {
			return time.Time{}, time.Time{}, utils.NewValidationError("customer phone is not valid")
		}
	}

	date, err := utils.ParseDate(input.Date, "")
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewValidationError("date must be YYYY-MM-DD")
	}
	dueDate := date
	if input.DueDate != "" {
		dueDate, err = utils.ParseDate(input.DueDate, "")
		if err != nil {
			return time.Time{}, time.Time{}, utils.NewValidationError("due date must be YYYY-MM-DD")
		}
		if dueDate.Before(date) {
			return time.Time{}, time.Time{}, utils.NewValidationError("due date must not be before date")
		}
	}
	return date, dueDate, nil
}

func (input *NewInvoice) series() string {
	series := strings.ToUpper(strings.TrimSpace(input.Series))
	if series == "" {
		series = defaultInvoiceSeries
	}
	return series
}

func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {
	date, dueDate, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = InvoiceStatusDraft
	}

	invoice := Invoice{
		CompanyId:       input.CompanyId,
		Series:          input.series(),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerTaxId:   strings.ToUpper(strings.TrimSpace(input.CustomerTaxId)),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		Date:            date,
		DueDate:         dueDate,
		Subtotal:        input.Subtotal.Round(2),
		TaxRate:         input.TaxRate,
		TaxAmount:       utils.CalculateTaxAmount(input.Subtotal, input.TaxRate),
		Total:           utils.CalculateInvoiceTotal(input.Subtotal, input.TaxRate),
		Status:          status,
		Notes:           strings.TrimSpace(input.Notes),
	}

	// serialize number assignment per company
	release, err := utils.CompanyLock(ctx, invoice.CompanyId, "InvoiceNumberLock", "invoice.go", "CreateInvoice")
	if err != nil {
		return nil, err
	}
	defer release()

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextInvoiceNumber(tx, invoice.CompanyId, invoice.Series)
		if err != nil {
			return err
		}
		invoice.Number = number

		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		if input.CreateLedgerEntry {
			entry := AccountingEntry{
				CompanyId:     invoice.CompanyId,
				Date:          invoice.Date,
				Description:   fmt.Sprintf("Invoice %s-%s %s", invoice.Series, invoice.Number, invoice.CustomerName),
				DebitAccount:  "430", // clientes
				CreditAccount: "700", // ventas
				Amount:        invoice.Total,
				Reference:     fmt.Sprintf("%s-%s", invoice.Series, invoice.Number),
			}
			if err := createAccountingEntryTx(tx, &entry); err != nil {
				return err
			}
			invoice.LedgerEntryId = &entry.ID
			if err := tx.Model(&invoice).Update("ledger_entry_id", entry.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func GetInvoice(ctx context.Context, companyId string, id int) (*Invoice, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	return utils.FetchModel[Invoice](ctx, companyId, id)
}

func GetInvoices(ctx context.Context, companyId string, status *InvoiceStatus) ([]*Invoice, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("company_id = ?", companyId)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}

	var results []*Invoice
	err := dbCtx.Order("date DESC, number DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateInvoice replaces the editable fields. Series and number never
// change after creation; tax amount and total are recomputed from the
// incoming subtotal and rate.
func UpdateInvoice(ctx context.Context, companyId string, id int, input *NewInvoice) (*Invoice, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	invoice, err := utils.FetchModel[Invoice](ctx, companyId, id)
	if err != nil {
		return nil, err
	}
	input.CompanyId = companyId
	date, dueDate, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		if !validStatusTransition(invoice.Status, input.Status) {
			return nil, utils.NewValidationError(fmt.Sprintf("cannot change status from %s to %s", invoice.Status, input.Status))
		}
		invoice.Status = input.Status
	}

	invoice.CustomerName = strings.TrimSpace(input.CustomerName)
	invoice.CustomerTaxId = strings.ToUpper(strings.TrimSpace(input.CustomerTaxId))
	invoice.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	invoice.CustomerAddress = strings.TrimSpace(input.CustomerAddress)
	invoice.Date = date
	invoice.DueDate = dueDate
	invoice.Subtotal = input.Subtotal.Round(2)
	invoice.TaxRate = input.TaxRate
	invoice.TaxAmount = utils.CalculateTaxAmount(input.Subtotal, input.TaxRate)
	invoice.Total = utils.CalculateInvoiceTotal(input.Subtotal, input.TaxRate)
	invoice.Notes = strings.TrimSpace(input.Notes)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func DeleteInvoice(ctx context.Context, companyId string, id int) (bool, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return false, err
	}
	invoice, err := utils.FetchModel[Invoice](ctx, companyId, id)
	if err != nil {
		return false, err
	}
	if invoice.Status == InvoiceStatusPaid {
		return false, utils.NewValidationError("paid invoices cannot be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(invoice).Error; err != nil {
		return false, err
	}
	return true, nil
}
