package models

import (
	"context"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID            int             `gorm:"primary_key" json:"id"`
	UserId        int             `gorm:"not null;index" json:"user_id"`
	CategoryId    int             `gorm:"not null;index" json:"category_id"`
	Category      *Category       `json:"category,omitempty"`
	Type          TransactionType `gorm:"size:10;not null" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Description   string          `gorm:"size:255" json:"description"`
	PaymentMethod PaymentMethod   `gorm:"size:10;not null" json:"payment_method"`
	Tags          string          `gorm:"size:255" json:"tags"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTransaction struct {
	CategoryId    int             `json:"category_id" binding:"required,gt=0"`
	Type          TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"payment_method" binding:"required,oneof=CASH CARD TRANSFER OTHER"`
	Tags          []string        `json:"tags"`
}

type TransactionFilter struct {
	Type       *TransactionType
	CategoryId *int
	From       *time.Time
	To         *time.Time
}

func (input *NewTransaction) validate(ctx context.Context, userId int) (time.Time, error) {
	if !input.Amount.IsPositive() {
		return time.Time{}, utils.NewValidationError("amount must be greater than zero")
	}

	date, err := utils.ParseDate(input.Date, "")
	if err != nil {
		return time.Time{}, utils.NewValidationError("date must be YYYY-MM-DD")
	}

	// category must belong to the user and match the transaction type
	category, err := utils.FetchUserModel[Category](ctx, userId, input.CategoryId)
	if err != nil {
		return time.Time{}, utils.NewValidationError("category not found")
	}
	if category.Type != input.Type {
		return time.Time{}, utils.NewValidationError("category type does not match transaction type")
	}

	return date, nil
}

func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range utils.UniqueSlice(tags) {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, ",")
}

func CreateTransaction(ctx context.Context, input *NewTransaction) (*Transaction, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	date, err := input.validate(ctx, userId)
	if err != nil {
		return nil, err
	}

	transaction := Transaction{
		UserId:        userId,
		CategoryId:    input.CategoryId,
		Type:          input.Type,
		Amount:        input.Amount.Round(2),
		Date:          date,
		Description:   strings.TrimSpace(input.Description),
		PaymentMethod: input.PaymentMethod,
		Tags:          joinTags(input.Tags),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func GetTransaction(ctx context.Context, id int) (*Transaction, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	return utils.FetchUserModel[Transaction](ctx, userId, id, "Category")
}

func GetTransactions(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Category").Where("user_id = ?", userId)
	if filter != nil {
		if filter.Type != nil {
			dbCtx = dbCtx.Where("type = ?", *filter.Type)
		}
		if filter.CategoryId != nil {
			dbCtx = dbCtx.Where("category_id = ?", *filter.CategoryId)
		}
		if filter.From != nil {
			dbCtx = dbCtx.Where("date >= ?", *filter.From)
		}
		if filter.To != nil {
			dbCtx = dbCtx.Where("date <= ?", *filter.To)
		}
	}

	var results []*Transaction
	if err := dbCtx.Order("date DESC, id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateTransaction(ctx context.Context, id int, input *NewTransaction) (*Transaction, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	transaction, err := utils.FetchUserModel[Transaction](ctx, userId, id)
	if err != nil {
		return nil, err
	}
	date, err := input.validate(ctx, userId)
	if err != nil {
		return nil, err
	}

	transaction.CategoryId = input.CategoryId
	transaction.Type = input.Type
	transaction.Amount = input.Amount.Round(2)
	transaction.Date = date
	transaction.Description = strings.TrimSpace(input.Description)
	transaction.PaymentMethod = input.PaymentMethod
	transaction.Tags = joinTags(input.Tags)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(transaction).Error; err != nil {
		return nil, err
	}
	return transaction, nil
}

func DeleteTransaction(ctx context.Context, id int) (bool, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return false, utils.NewValidationError("user id is required")
	}
	transaction, err := utils.FetchUserModel[Transaction](ctx, userId, id)
	if err != nil {
		return false, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(transaction).Error; err != nil {
		return false, err
	}
	return true, nil
}
