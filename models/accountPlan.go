package models

import (
	"context"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
)

// AccountPlan is a node of a company's chart of accounts. Parents are
// resolved by code at creation; the level is parent.level + 1.
type AccountPlan struct {
	ID        int             `gorm:"primary_key" json:"id"`
	CompanyId string          `gorm:"size:36;not null;uniqueIndex:idx_account_code" json:"company_id"`
	Code      string          `gorm:"size:20;not null;uniqueIndex:idx_account_code" json:"code"`
	Name      string          `gorm:"size:200;not null" json:"name"`
	Type      AccountPlanType `gorm:"size:10;not null" json:"type"`
	Level     int             `gorm:"not null" json:"level"`
	ParentId  *int            `json:"parent_id,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAccountPlan struct {
	CompanyId  string          `json:"company_id" binding:"required"`
	Code       string          `json:"code" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Type       AccountPlanType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentCode string          `json:"parent_code"`
}

func (input *NewAccountPlan) validate(ctx context.Context) error {
	if err := ValidateCompanyAccess(ctx, input.CompanyId); err != nil {
		return err
	}
	if strings.TrimSpace(input.Code) == "" {
		return utils.NewValidationError("code is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return utils.NewValidationError("name is required")
	}

	// codes are unique per company
	return utils.ValidateUnique[AccountPlan](ctx, input.CompanyId, "code", strings.TrimSpace(input.Code), 0)
}

// accounts deeper than this indicate a malformed tree
const maxAccountDepth = 50

// chainContains walks up the parent chain from start looking for id. The
// fetch callback resolves a parent by primary key. An exhausted depth limit
// counts as a hit so a corrupted tree can never be extended.
func chainContains(start *AccountPlan, id int, fetch func(int) (*AccountPlan, error)) (bool, error) {
	current := start
	for depth := 0; current != nil; depth++ {
		if depth >= maxAccountDepth {
			return true, nil
		}
		if current.ID == id {
			return true, nil
		}
		if current.ParentId == nil {
			return false, nil
		}
		next, err := fetch(*current.ParentId)
		if err != nil {
			return false, err
		}
		current = next
	}
	return false, nil
}

func parentChainContains(ctx context.Context, parent *AccountPlan, id int) (bool, error) {
	db := config.GetDB()
	return chainContains(parent, id, func(parentId int) (*AccountPlan, error) {
		var account AccountPlan
		if err := db.WithContext(ctx).First(&account, parentId).Error; err != nil {
			return nil, err
		}
		return &account, nil
	})
}

// resolveParent looks up the parent account by code within the company.
func resolveParent(ctx context.Context, companyId string, parentCode string) (*AccountPlan, error) {
	parentCode = strings.TrimSpace(parentCode)
	if parentCode == "" {
		return nil, nil
	}

	db := config.GetDB()
	var parent AccountPlan
	err := db.WithContext(ctx).
		Where("company_id = ? AND code = ?", companyId, parentCode).
		First(&parent).Error
	if err != nil {
		return nil, utils.NewValidationError("parent account not found")
	}
	return &parent, nil
}

func CreateAccountPlan(ctx context.Context, input *NewAccountPlan) (*AccountPlan, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	parent, err := resolveParent(ctx, input.CompanyId, input.ParentCode)
	if err != nil {
		return nil, err
	}

	account := AccountPlan{
		CompanyId: input.CompanyId,
		Code:      strings.TrimSpace(input.Code),
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		Level:     1,
	}
	if parent != nil {
		account.Level = parent.Level + 1
		account.ParentId = &parent.ID
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func GetAccountPlan(ctx context.Context, companyId string, id int) (*AccountPlan, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	return utils.FetchModel[AccountPlan](ctx, companyId, id)
}

func GetAccountPlans(ctx context.Context, companyId string) ([]*AccountPlan, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var results []*AccountPlan
	err := db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Order("code").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateAccountPlan(ctx context.Context, companyId string, id int, input *NewAccountPlan) (*AccountPlan, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	account, err := utils.FetchModel[AccountPlan](ctx, companyId, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, utils.NewValidationError("name is required")
	}

	// code stays fixed; renaming and retyping are allowed
	account.Name = strings.TrimSpace(input.Name)
	account.Type = input.Type

	if input.ParentCode != "" {
		parent, err := resolveParent(ctx, companyId, input.ParentCode)
		if err != nil {
			return nil, err
		}
		// the account must not appear anywhere in the new parent's chain,
		// otherwise re-parenting creates a loop
		cyclic, err := parentChainContains(ctx, parent, account.ID)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, utils.NewValidationError("account cannot be its own ancestor")
		}
		account.ParentId = &parent.ID
		account.Level = parent.Level + 1
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func DeleteAccountPlan(ctx context.Context, companyId string, id int) (bool, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return false, err
	}
	account, err := utils.FetchModel[AccountPlan](ctx, companyId, id)
	if err != nil {
		return false, err
	}

	// block deletion while children reference the account
	db := config.GetDB()
	var count int64
	err = db.WithContext(ctx).Model(&AccountPlan{}).
		Where("parent_id = ?", account.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, utils.NewValidationError("account has child accounts")
	}

	if err := db.WithContext(ctx).Delete(account).Error; err != nil {
		return false, err
	}
	return true, nil
}
