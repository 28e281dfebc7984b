package models

import (
	"context"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountingEntry struct {
	ID            int             `gorm:"primary_key" json:"id"`
	CompanyId     string          `gorm:"size:36;not null;index" json:"company_id"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Description   string          `gorm:"size:255;not null" json:"description"`
	DebitAccount  string          `gorm:"size:20;not null" json:"debit_account"`
	CreditAccount string          `gorm:"size:20;not null" json:"credit_account"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Reference     string          `gorm:"size:100" json:"reference"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAccountingEntry struct {
	CompanyId     string          `json:"company_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	DebitAccount  string          `json:"debit_account" binding:"required"`
	CreditAccount string          `json:"credit_account" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Reference     string          `json:"reference"`
}

// LedgerBalanceResult carries the report figure together with a corrected
// per-account breakdown.
type LedgerBalanceResult struct {
	Balance           decimal.Decimal            `json:"balance"`
	BalancesByAccount map[string]decimal.Decimal `json:"balances_by_account"`
	EntryCount        int                        `json:"entry_count"`
}

func (input *NewAccountingEntry) validate(ctx context.Context) (time.Time, error) {
	if err := ValidateCompanyAccess(ctx, input.CompanyId); err != nil {
		return time.Time{}, err
	}
	if !input.Amount.IsPositive() {
		return time.Time{}, utils.NewValidationError("amount must be greater than zero")
	}
	if strings.TrimSpace(input.DebitAccount) == strings.TrimSpace(input.CreditAccount) {
		return time.Time{}, utils.NewValidationError("debit and credit accounts must differ")
	}
	date, err := utils.ParseDate(input.Date, "")
	if err != nil {
		return time.Time{}, utils.NewValidationError("date must be YYYY-MM-DD")
	}
	return date, nil
}

func (input *NewAccountingEntry) toEntry(date time.Time) *AccountingEntry {
	return &AccountingEntry{
		CompanyId:     input.CompanyId,
		Date:          date,
		Description:   strings.TrimSpace(input.Description),
		DebitAccount:  strings.TrimSpace(input.DebitAccount),
		CreditAccount: strings.TrimSpace(input.CreditAccount),
		Amount:        input.Amount.Round(2),
		Reference:     strings.TrimSpace(input.Reference),
	}
}

func CreateAccountingEntry(ctx context.Context, input *NewAccountingEntry) (*AccountingEntry, error) {
	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	entry := input.toEntry(date)
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// createAccountingEntryTx inserts an entry inside an existing transaction.
// Used by invoice creation so the invoice and its ledger entry commit
// together.
func createAccountingEntryTx(tx *gorm.DB, entry *AccountingEntry) error {
	return tx.Create(entry).Error
}

func GetAccountingEntry(ctx context.Context, companyId string, id int) (*AccountingEntry, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	return utils.FetchModel[AccountingEntry](ctx, companyId, id)
}

func GetAccountingEntries(ctx context.Context, companyId string) ([]*AccountingEntry, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var results []*AccountingEntry
	err := db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Order("date DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateAccountingEntry(ctx context.Context, companyId string, id int, input *NewAccountingEntry) (*AccountingEntry, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	entry, err := utils.FetchModel[AccountingEntry](ctx, companyId, id)
	if err != nil {
		return nil, err
	}
	// the entry stays in its company
	input.CompanyId = companyId
	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	entry.Date = date
	entry.Description = strings.TrimSpace(input.Description)
	entry.DebitAccount = strings.TrimSpace(input.DebitAccount)
	entry.CreditAccount = strings.TrimSpace(input.CreditAccount)
	entry.Amount = input.Amount.Round(2)
	entry.Reference = strings.TrimSpace(input.Reference)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteAccountingEntry(ctx context.Context, companyId string, id int) (bool, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return false, err
	}
	entry, err := utils.FetchModel[AccountingEntry](ctx, companyId, id)
	if err != nil {
		return false, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(entry).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetLedgerBalance computes the dashboard balance figure for a company.
// Balance uses the historical formula (see utils.LedgerBalance); the
// per-account map is the corrected double-entry view.
func GetLedgerBalance(ctx context.Context, companyId string) (*LedgerBalanceResult, error) {
	entries, err := GetAccountingEntries(ctx, companyId)
	if err != nil {
		return nil, err
	}

	amounts := make([]utils.LedgerAmount, 0, len(entries))
	for _, e := range entries {
		amounts = append(amounts, utils.LedgerAmount{
			DebitAccount:  e.DebitAccount,
			CreditAccount: e.CreditAccount,
			Amount:        e.Amount,
		})
	}

	return &LedgerBalanceResult{
		Balance:           utils.LedgerBalance(amounts),
		BalancesByAccount: utils.LedgerBalanceByAccount(amounts),
		EntryCount:        len(entries),
	}, nil
}
