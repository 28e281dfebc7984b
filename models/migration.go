package models

import (
	"github.com/datafiscal/finanzas_backend/config"
)

// MigrateTable runs AutoMigrate for every model. The unique index on
// (company_id, series, number) backs the invoice numbering guarantee;
// removing it reintroduces duplicate numbers under concurrent creates.
func MigrateTable() {
	db := config.GetDB()
	logger := config.GetLogger()

	err := db.AutoMigrate(
		&User{},
		&Company{},
		&UserCompany{},
		&Category{},
		&Transaction{},
		&AccountingEntry{},
		&Invoice{},
		&TaxReport{},
		&AccountPlan{},
	)
	if err != nil {
		config.LogError(logger, "migration.go", "MigrateTable", "AutoMigrate", nil, err)
	}
}
