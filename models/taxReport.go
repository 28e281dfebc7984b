package models

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/shopspring/decimal"
)

type TaxReport struct {
	ID              int             `gorm:"primary_key" json:"id"`
	CompanyId       string          `gorm:"size:36;not null;index" json:"company_id"`
	Type            TaxReportType   `gorm:"size:10;not null" json:"type"`
	Period          string          `gorm:"size:10;not null" json:"period"`
	TotalPayable    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"total_payable"`
	TotalReceivable decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"total_receivable"`
	NetAmount       decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"net_amount"`
	Status          TaxReportStatus `gorm:"size:10;not null" json:"status"`
	DueDate         time.Time       `json:"due_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTaxReport struct {
	CompanyId       string          `json:"company_id" binding:"required"`
	Type            TaxReportType   `json:"type" binding:"required,oneof=IVA IRPF IS"`
	Period          string          `json:"period" binding:"required"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	Status          TaxReportStatus `json:"status" binding:"omitempty,oneof=DRAFT SUBMITTED PAID"`
	DueDate         string          `json:"due_date"`
}

// periods look like "2025-T1" (quarter) or "2025" (annual)
var periodPattern = regexp.MustCompile(`^\d{4}(-T[1-4])?$`)

func (input *NewTaxReport) validate(ctx context.Context) (time.Time, error) {
	if err := ValidateCompanyAccess(ctx, input.CompanyId); err != nil {
		return time.Time{}, err
	}
	if input.TotalPayable.IsNegative() {
		return time.Time{}, utils.NewValidationError("total payable must not be negative")
	}
	if input.TotalReceivable.IsNegative() {
		return time.Time{}, utils.NewValidationError("total receivable must not be negative")
	}
	if !periodPattern.MatchString(strings.TrimSpace(input.Period)) {
		return time.Time{}, utils.NewValidationError("period must be YYYY or YYYY-T1..T4")
	}

	var dueDate time.Time
	if input.DueDate != "" {
		var err error
		dueDate, err = utils.ParseDate(input.DueDate, "")
		if err != nil {
			return time.Time{}, utils.NewValidationError("due date must be YYYY-MM-DD")
		}
	}
	return dueDate, nil
}

func CreateTaxReport(ctx context.Context, input *NewTaxReport) (*TaxReport, error) {
	dueDate, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = TaxReportStatusDraft
	}

	report := TaxReport{
		CompanyId:       input.CompanyId,
		Type:            input.Type,
		Period:          strings.TrimSpace(input.Period),
		TotalPayable:    input.TotalPayable.Round(2),
		TotalReceivable: input.TotalReceivable.Round(2),
		NetAmount:       utils.CalculateNetAmount(input.TotalPayable, input.TotalReceivable),
		Status:          status,
		DueDate:         dueDate,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func GetTaxReport(ctx context.Context, companyId string, id int) (*TaxReport, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	return utils.FetchModel[TaxReport](ctx, companyId, id)
}

func GetTaxReports(ctx context.Context, companyId string, reportType *TaxReportType) ([]*TaxReport, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("company_id = ?", companyId)
	if reportType != nil {
		dbCtx = dbCtx.Where("type = ?", *reportType)
	}

	var results []*TaxReport
	err := dbCtx.Order("period DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateTaxReport(ctx context.Context, companyId string, id int, input *NewTaxReport) (*TaxReport, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return nil, err
	}
	report, err := utils.FetchModel[TaxReport](ctx, companyId, id)
	if err != nil {
		return nil, err
	}
	input.CompanyId = companyId
	dueDate, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	report.Type = input.Type
	report.Period = strings.TrimSpace(input.Period)
	report.TotalPayable = input.TotalPayable.Round(2)
	report.TotalReceivable = input.TotalReceivable.Round(2)
	report.NetAmount = utils.CalculateNetAmount(input.TotalPayable, input.TotalReceivable)
	if input.Status != "" {
		report.Status = input.Status
	}
	report.DueDate = dueDate

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func DeleteTaxReport(ctx context.Context, companyId string, id int) (bool, error) {
	if err := ValidateCompanyAccess(ctx, companyId); err != nil {
		return false, err
	}
	report, err := utils.FetchModel[TaxReport](ctx, companyId, id)
	if err != nil {
		return false, err
	}
	if report.Status == TaxReportStatusSubmitted || report.Status == TaxReportStatusPaid {
		return false, utils.NewValidationError("submitted reports cannot be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(report).Error; err != nil {
		return false, err
	}
	return true, nil
}
