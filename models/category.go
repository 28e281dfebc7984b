package models

import (
	"context"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
)

type Category struct {
	ID        int             `gorm:"primary_key" json:"id"`
	UserId    int             `gorm:"not null;index" json:"user_id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Type      TransactionType `gorm:"size:10;not null" json:"type"`
	Color     string          `gorm:"size:7" json:"color"`
	Icon      string          `gorm:"size:50" json:"icon"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCategory struct {
	Name  string          `json:"name" binding:"required"`
	Type  TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string          `json:"color"`
	Icon  string          `json:"icon"`
}

func (input *NewCategory) validate(ctx context.Context, userId int) error {
	if strings.TrimSpace(input.Name) == "" {
		return utils.NewValidationError("name is required")
	}
	if input.Type != TransactionTypeIncome && input.Type != TransactionTypeExpense {
		return utils.NewValidationError("type must be INCOME or EXPENSE")
	}

	// category names are unique per user and type
	db := config.GetDB()
	var count int64
	err := db.WithContext(ctx).Model(&Category{}).
		Where("user_id = ? AND name = ? AND type = ?", userId, strings.TrimSpace(input.Name), input.Type).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("duplicate category name")
	}
	return nil
}

func CreateCategory(ctx context.Context, input *NewCategory) (*Category, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	if err := input.validate(ctx, userId); err != nil {
		return nil, err
	}

	category := Category{
		UserId: userId,
		Name:   strings.TrimSpace(input.Name),
		Type:   input.Type,
		Color:  input.Color,
		Icon:   input.Icon,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetCategory(ctx context.Context, id int) (*Category, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	return utils.FetchUserModel[Category](ctx, userId, id)
}

func GetCategories(ctx context.Context, categoryType *TransactionType) ([]*Category, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if categoryType != nil {
		dbCtx = dbCtx.Where("type = ?", *categoryType)
	}

	var results []*Category
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateCategory(ctx context.Context, id int, input *NewCategory) (*Category, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}
	category, err := utils.FetchUserModel[Category](ctx, userId, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, utils.NewValidationError("name is required")
	}
	if input.Type != TransactionTypeIncome && input.Type != TransactionTypeExpense {
		return nil, utils.NewValidationError("type must be INCOME or EXPENSE")
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Type = input.Type
	category.Color = input.Color
	category.Icon = input.Icon

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func DeleteCategory(ctx context.Context, id int) (bool, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return false, utils.NewValidationError("user id is required")
	}
	category, err := utils.FetchUserModel[Category](ctx, userId, id)
	if err != nil {
		return false, err
	}

	// block deletion while transactions still reference the category
	db := config.GetDB()
	var count int64
	err = db.WithContext(ctx).Model(&Transaction{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, utils.NewValidationError("category is in use")
	}

	if err := db.WithContext(ctx).Delete(category).Error; err != nil {
		return false, err
	}
	return true, nil
}
