package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

// authedRouter injects an authenticated user the way the session
// middleware would, without touching redis.
func authedRouter(userId int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := utils.SetUserIdInContext(c.Request.Context(), userId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	return r
}

// A record the caller cannot see answers 404, exactly like a record that
// does not exist. It must never answer 403 or 200.
func TestOutOfScopeCompanyAnswersNotFound(t *testing.T) {
	r := authedRouter(1)
	r.GET("/accounting/entries/:id", GetAccountingEntry)
	r.GET("/tax/reports/:id", GetTaxReport)
	r.GET("/accounting/plans/:id", GetAccountPlan)

	paths := []string{
		"/accounting/entries/5?company_id=11111111-2222-3333-4444-555555555555",
		"/tax/reports/5?company_id=11111111-2222-3333-4444-555555555555",
		"/accounting/plans/5?company_id=11111111-2222-3333-4444-555555555555",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, w.Code)
		}
		if w.Code == http.StatusForbidden {
			t.Errorf("GET %s leaked existence with a 403", path)
		}
	}
}

// User-owned records follow the same rule: another user's id is a 404.
func TestForeignUserRecordAnswersNotFound(t *testing.T) {
	r := authedRouter(1)
	r.GET("/transactions/:id", GetTransaction)
	r.GET("/categories/:id", GetCategory)

	for _, path := range []string{"/transactions/7", "/categories/7"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, w.Code)
		}
	}
}
