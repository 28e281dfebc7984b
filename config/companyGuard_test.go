package config

import (
	"context"
	"sync"
	"testing"

	"github.com/datafiscal/finanzas_backend/appctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type guardedRow struct {
	ID        int
	CompanyId string
	Name      string
}

type unguardedRow struct {
	ID   int
	Name string
}

func guardStatement(t *testing.T, ctx context.Context, model any) *gorm.DB {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatal(err)
	}
	return &gorm.DB{Statement: &gorm.Statement{
		Context: ctx,
		Schema:  s,
		Table:   s.Table,
		Clauses: map[string]clause.Clause{},
	}}
}

func TestCompanyGuardAppendsCompanyClause(t *testing.T) {
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCompanyId, "company-1")
	db := guardStatement(t, ctx, &guardedRow{})

	companyGuardCallback(db)

	if !whereHasCompanyID(db.Statement.Clauses["WHERE"]) {
		t.Error("expected a company_id clause on a tenant-scoped statement")
	}
}

func TestCompanyGuardNoCompanyInContext(t *testing.T) {
	db := guardStatement(t, context.Background(), &guardedRow{})

	companyGuardCallback(db)

	if _, ok := db.Statement.Clauses["WHERE"]; ok {
		t.Error("expected no clause when the context carries no company id")
	}
}

func TestCompanyGuardSkipScope(t *testing.T) {
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCompanyId, "company-1")
	ctx = appctx.Set(ctx, appctx.ContextKeySkipCompanyScope, true)
	db := guardStatement(t, ctx, &guardedRow{})

	companyGuardCallback(db)

	if _, ok := db.Statement.Clauses["WHERE"]; ok {
		t.Error("expected no clause when scoping is bypassed")
	}
}

func TestCompanyGuardIgnoresModelsWithoutCompanyId(t *testing.T) {
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCompanyId, "company-1")
	db := guardStatement(t, ctx, &unguardedRow{})

	companyGuardCallback(db)

	if _, ok := db.Statement.Clauses["WHERE"]; ok {
		t.Error("expected no clause on a model without a company_id column")
	}
}

func TestCompanyGuardKeepsExplicitTenantFilter(t *testing.T) {
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCompanyId, "company-1")
	db := guardStatement(t, ctx, &guardedRow{})
	db.Statement.Clauses["WHERE"] = clause.Clause{
		Name: "WHERE",
		Expression: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: "company_id", Value: "company-2"},
		}},
	}

	companyGuardCallback(db)

	w, ok := db.Statement.Clauses["WHERE"].Expression.(clause.Where)
	if !ok {
		t.Fatal("WHERE clause lost its expression")
	}
	if len(w.Exprs) != 1 {
		t.Errorf("explicit tenant filter duplicated: %d exprs", len(w.Exprs))
	}
}
