package models

import (
	"context"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID        string    `gorm:"primary_key;size:36" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	TaxId     string    `gorm:"size:20" json:"tax_id"`
	Address   string    `gorm:"size:255" json:"address"`
	IsActive  *bool     `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserCompany links a user to the companies they may act on. Every scoped
// read and write checks this table, never the payload alone.
type UserCompany struct {
	ID        int             `gorm:"primary_key" json:"id"`
	UserId    int             `gorm:"not null;uniqueIndex:idx_user_company" json:"user_id"`
	CompanyId string          `gorm:"size:36;not null;uniqueIndex:idx_user_company" json:"company_id"`
	Role      UserCompanyRole `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewCompany struct {
	Name    string `json:"name" binding:"required"`
	TaxId   string `json:"tax_id"`
	Address string `json:"address"`
}

type CompanyInfo struct {
	CompanyId string          `json:"company_id"`
	Name      string          `json:"name"`
	Role      UserCompanyRole `json:"role"`
}

func (input *NewCompany) validate() error {
	if strings.TrimSpace(input.Name) == "" {
		return utils.NewValidationError("name is required")
	}
	return nil
}

// ScopedCompanyIds returns every company id the context user belongs to.
func ScopedCompanyIds(ctx context.Context) ([]string, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	db := config.GetDB()
	var ids []string
	err := db.WithContext(ctx).Model(&UserCompany{}).
		Where("user_id = ?", userId).
		Pluck("company_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ValidateCompanyAccess checks the requested company against the user's
// set. Out-of-scope lookups come back as record-not-found, the same as a
// company that does not exist.
func ValidateCompanyAccess(ctx context.Context, companyId string) error {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return utils.NewValidationError("user id is required")
	}

	// no database means membership cannot be proven; deny as not-found
	db := config.GetDB()
	if db == nil {
		return utils.ErrorRecordNotFound
	}
	var count int64
	err := db.WithContext(ctx).Model(&UserCompany{}).
		Where("user_id = ? AND company_id = ?", userId, companyId).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

func GetUserCompanies(ctx context.Context, userId int) ([]*CompanyInfo, error) {

	db := config.GetDB()
	var results []*CompanyInfo

	err := db.WithContext(ctx).Model(&UserCompany{}).
		Select("user_companies.company_id, companies.name, user_companies.role").
		Joins("JOIN companies ON companies.id = user_companies.company_id").
		Where("user_companies.user_id = ?", userId).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CreateCompany creates the company and the creator's admin membership in
// one transaction.
func CreateCompany(ctx context.Context, input *NewCompany) (*Company, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	company := Company{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(input.Name),
		TaxId:    strings.ToUpper(strings.TrimSpace(input.TaxId)),
		Address:  strings.TrimSpace(input.Address),
		IsActive: utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		membership := UserCompany{
			UserId:    userId,
			CompanyId: company.ID,
			Role:      UserCompanyRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func GetCompany(ctx context.Context, companyId string) (*Company, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var result Company
	err := db.WithContext(ctx).Where("id = ?", companyId).First(&result).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &result, nil
}

func GetCompanies(ctx context.Context) ([]*Company, error) {
	ids, err := ScopedCompanyIds(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*Company{}, nil
	}

	db := config.GetDB()
	var results []*Company
	err = db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateCompany(ctx context.Context, companyId string, input *NewCompany) (*Company, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	company, err := GetCompany(ctx, companyId)
	if err != nil {
		return nil, err
	}

	company.Name = strings.TrimSpace(input.Name)
	company.TaxId = strings.ToUpper(strings.TrimSpace(input.TaxId))
	company.Address = strings.TrimSpace(input.Address)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// AddCompanyMember grants another user access. Only admins of the company
// may call this.
func AddCompanyMember(ctx context.Context, companyId string, email string, role UserCompanyRole) (*UserCompany, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	db := config.GetDB()
	var membership UserCompany
	err := db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userId, companyId).
		First(&membership).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	if membership.Role != UserCompanyRoleAdmin {
		return nil, utils.NewValidationError("only company admins can add members")
	}

	var target User
	err = db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&target).Error
	if err != nil {
		return nil, utils.NewValidationError("user not found")
	}

	if role != UserCompanyRoleAdmin && role != UserCompanyRoleAccountant {
		role = UserCompanyRoleAccountant
	}

	newMember := UserCompany{
		UserId:    target.ID,
		CompanyId: companyId,
		Role:      role,
	}
	if err := db.WithContext(ctx).Create(&newMember).Error; err != nil {
		return nil, utils.NewValidationError("user already belongs to this company")
	}
	return &newMember, nil
}
