package models

import (
	"context"
	"strings"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/models/exports"
	"github.com/datafiscal/finanzas_backend/utils"
	"gorm.io/gorm"
)

// ImportResult summarizes a curated CSV import.
type ImportResult struct {
	Imported          int `json:"imported"`
	CategoriesCreated int `json:"categories_created"`
}

// ToExportRecord projects a transaction for the exports package.
func (t *Transaction) ToExportRecord() exports.TransactionRecord {
	record := exports.TransactionRecord{
		ID:            t.ID,
		Date:          t.Date,
		Description:   t.Description,
		Type:          string(t.Type),
		Amount:        t.Amount,
		PaymentMethod: string(t.PaymentMethod),
		Tags:          t.Tags,
		CreatedAt:     t.CreatedAt,
	}
	if t.Category != nil {
		record.CategoryName = t.Category.Name
		record.CategoryType = string(t.Category.Type)
	}
	return record
}

// ExportRecords loads the caller's transactions as export rows.
func ExportRecords(ctx context.Context, filter *TransactionFilter) ([]exports.TransactionRecord, error) {
	transactions, err := GetTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := make([]exports.TransactionRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.ToExportRecord())
	}
	return records, nil
}

// PublicFeedRecords loads every transaction for the public BI feed.
// Errors (store down, not migrated yet) are the caller's cue to serve
// synthetic data instead.
func PublicFeedRecords(ctx context.Context) ([]exports.TransactionRecord, error) {
	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrorRecordNotFound
	}

	var transactions []*Transaction
	err := db.WithContext(ctx).Preload("Category").
		Order("date DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	records := make([]exports.TransactionRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.ToExportRecord())
	}
	return records, nil
}

// ImportTransactions loads curated CSV rows back into the caller's account,
// creating missing categories on the fly. All rows commit together.
func ImportTransactions(ctx context.Context, records []exports.TransactionRecord) (*ImportResult, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	result := ImportResult{}
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cache category lookups per (name, type)
		categoryIds := make(map[string]int)

		for _, r := range records {
			transactionType := TransactionType(r.Type)
			if transactionType != TransactionTypeIncome && transactionType != TransactionTypeExpense {
				return utils.NewValidationError("type must be INCOME or EXPENSE")
			}
			if !r.Amount.IsPositive() {
				return utils.NewValidationError("amount must be greater than zero")
			}
			categoryName := strings.TrimSpace(r.CategoryName)
			if categoryName == "" {
				return utils.NewValidationError("category name is required")
			}

			key := categoryName + "|" + string(transactionType)
			categoryId, seen := categoryIds[key]
			if !seen {
				var category Category
				err := tx.Where("user_id = ? AND name = ? AND type = ?", userId, categoryName, transactionType).
					First(&category).Error
				if err == gorm.ErrRecordNotFound {
					category = Category{
						UserId: userId,
						Name:   categoryName,
						Type:   transactionType,
					}
					if err := tx.Create(&category).Error; err != nil {
						return err
					}
					result.CategoriesCreated++
				} else if err != nil {
					return err
				}
				categoryId = category.ID
				categoryIds[key] = categoryId
			}

			method := PaymentMethod(r.PaymentMethod)
			switch method {
			case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
			default:
				method = PaymentMethodOther
			}

			transaction := Transaction{
				UserId:        userId,
				CategoryId:    categoryId,
				Type:          transactionType,
				Amount:        r.Amount.Round(2),
				Date:          r.Date,
				Description:   r.Description,
				PaymentMethod: method,
				Tags:          r.Tags,
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
