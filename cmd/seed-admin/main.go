// seed-admin creates or updates the demo admin account plus a demo company,
// its membership, a starter category set and a small chart of accounts.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-admin
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/models"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@finanzas.local"
	adminPassword = "Finanz@sAdmin1"
	adminName     = "Finanzas Admin"
	demoCompany   = "Empresa Demo SL"
)

var seedCategories = []struct {
	Name string
	Type models.TransactionType
}{
	{"Ventas", models.TransactionTypeIncome},
	{"Servicios", models.TransactionTypeIncome},
	{"Nómina", models.TransactionTypeExpense},
	{"Alquiler", models.TransactionTypeExpense},
	{"Suministros", models.TransactionTypeExpense},
	{"Transporte", models.TransactionTypeExpense},
}

var seedAccounts = []struct {
	Code   string
	Name   string
	Type   models.AccountPlanType
	Parent string
}{
	{"4", "Acreedores y deudores", models.AccountPlanTypeAsset, ""},
	{"43", "Clientes", models.AccountPlanTypeAsset, "4"},
	{"430", "Clientes nacionales", models.AccountPlanTypeAsset, "43"},
	{"7", "Ventas e ingresos", models.AccountPlanTypeIncome, ""},
	{"70", "Ventas", models.AccountPlanTypeIncome, "7"},
	{"700", "Ventas de mercaderías", models.AccountPlanTypeIncome, "70"},
	{"6", "Compras y gastos", models.AccountPlanTypeExpense, ""},
	{"64", "Gastos de personal", models.AccountPlanTypeExpense, "6"},
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// seeding writes across tenants; bypass the company guard plugin
	ctx := utils.SetSkipCompanyScopeInContext(context.Background(), true)
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fail("database not initialized (config.GetDB returned nil). Set DB_* env vars.")
	}
	models.MigrateTable()

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		fail("failed to hash password: %v", err)
	}

	var admin models.User
	err = db.WithContext(ctx).Where("email = ?", adminEmail).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		admin = models.User{
			Name:     adminName,
			Email:    adminEmail,
			Password: string(hashed),
			IsActive: utils.NewTrue(),
		}
		if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
			fail("failed to create admin user: %v", err)
		}
		fmt.Printf("Created admin user %q\n", adminEmail)
	} else if err != nil {
		fail("failed to lookup admin user: %v", err)
	} else {
		if err := db.WithContext(ctx).Model(&admin).Updates(map[string]any{
			"password":  string(hashed),
			"name":      adminName,
			"is_active": utils.NewTrue(),
		}).Error; err != nil {
			fail("failed to update admin user: %v", err)
		}
		fmt.Printf("Updated admin user %q\n", adminEmail)
	}

	ctx = utils.SetUserIdInContext(ctx, admin.ID)
	ctx = utils.SetUserNameInContext(ctx, "Seed")

	var company models.Company
	err = db.WithContext(ctx).Where("name = ?", demoCompany).First(&company).Error
	if err == gorm.ErrRecordNotFound {
		company = models.Company{
			ID:       uuid.New().String(),
			Name:     demoCompany,
			TaxId:    "B12345678",
			IsActive: utils.NewTrue(),
		}
		if err := db.WithContext(ctx).Create(&company).Error; err != nil {
			fail("failed to create demo company: %v", err)
		}
		fmt.Printf("Created demo company %q\n", demoCompany)
	} else if err != nil {
		fail("failed to lookup demo company: %v", err)
	}

	membership := models.UserCompany{
		UserId:    admin.ID,
		CompanyId: company.ID,
		Role:      models.UserCompanyRoleAdmin,
	}
	var existing models.UserCompany
	err = db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", admin.ID, company.ID).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.WithContext(ctx).Create(&membership).Error; err != nil {
			fail("failed to create membership: %v", err)
		}
	} else if err != nil {
		fail("failed to lookup membership: %v", err)
	}

	for _, c := range seedCategories {
		var count int64
		if err := db.WithContext(ctx).Model(&models.Category{}).
			Where("user_id = ? AND name = ? AND type = ?", admin.ID, c.Name, c.Type).
			Count(&count).Error; err != nil {
			fail("failed to check category %q: %v", c.Name, err)
		}
		if count > 0 {
			continue
		}
		category := models.Category{UserId: admin.ID, Name: c.Name, Type: c.Type}
		if err := db.WithContext(ctx).Create(&category).Error; err != nil {
			fail("failed to create category %q: %v", c.Name, err)
		}
	}
	fmt.Println("Seeded categories")

	for _, a := range seedAccounts {
		var count int64
		if err := db.WithContext(ctx).Model(&models.AccountPlan{}).
			Where("company_id = ? AND code = ?", company.ID, a.Code).
			Count(&count).Error; err != nil {
			fail("failed to check account %q: %v", a.Code, err)
		}
		if count > 0 {
			continue
		}
		input := models.NewAccountPlan{
			CompanyId:  company.ID,
			Code:       a.Code,
			Name:       a.Name,
			Type:       a.Type,
			ParentCode: a.Parent,
		}
		if _, err := models.CreateAccountPlan(ctx, &input); err != nil {
			fail("failed to create account %q: %v", a.Code, err)
		}
	}
	fmt.Println("Seeded account plan")
}
