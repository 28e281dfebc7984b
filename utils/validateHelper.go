package utils

import (
	"context"
	"errors"
	"reflect"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/go-playground/validator/v10"
)

// ValidateUnique rejects a duplicate value in a company-scoped column.
// Violations come back as ValidationError so handlers answer 400.
func ValidateUnique[T any](ctx context.Context, companyId string, column string, value interface{}, exceptId interface{}) error {
	var count int64
	var err error
	if reflect.ValueOf(exceptId).IsZero() {
		count, err = ResourceCountWhere[T](ctx, companyId, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, companyId, column+" = ? AND NOT id = ?", value, exceptId)
	}

	if err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("duplicate " + column)
	}
	return nil
}

// count records, using WHERE company_id = ? AND $condition
// company_id can be blank for user-owned tables
func ResourceCountWhere[T any](ctx context.Context, companyId string, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	if db == nil {
		return 0, ErrorRecordNotFound
	}
	dbCtx := db.WithContext(ctx).Model(&model)
	var count int64
	if companyId != "" {
		dbCtx.Where("company_id = ?", companyId)
	}
	dbCtx.Where(condition, value...)
	if err := dbCtx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ProcessValidationErrors flattens binding failures into a field -> message
// map. Callers must return every violated field, never just the first.
func ProcessValidationErrors(err error) map[string]string {

	errorResponse := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorResponse["body"] = err.Error()
		return errorResponse
	}

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = validationMessage(ve)
	}

	return errorResponse
}

func validationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + ve.Param()
	case "gte":
		return "must be at least " + ve.Param()
	case "lte":
		return "must be at most " + ve.Param()
	case "oneof":
		return "must be one of: " + ve.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + ve.Tag() + " validation"
	}
}
