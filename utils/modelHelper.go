package utils

import (
	"context"

	"github.com/datafiscal/finanzas_backend/config"
)

/* DB fetching */

// fetch model from db, unscoped (callers own the access check)
// (may return RecordNotFound)
func FetchSingleModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrorRecordNotFound
	}
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch a company-owned model from db
// (company_id is used in the query's WHERE, may return RecordNotFound —
// also when the record exists but belongs to another company, so callers
// never leak existence across tenants)
func FetchModel[T any](ctx context.Context, companyId string, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrorRecordNotFound
	}
	dbCtx := db.WithContext(ctx).Where("company_id = ?", companyId)
	// preloading
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch a user-owned model from db (transactions, categories)
// (may return RecordNotFound, also for other users' records)
func FetchUserModel[T any](ctx context.Context, userId int, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrorRecordNotFound
	}
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}
