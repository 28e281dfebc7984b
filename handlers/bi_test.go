package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func biRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bi/public", PublicBIFeed)
	return r
}

func TestPublicBIFeedDisabled(t *testing.T) {
	os.Setenv("PUBLIC_BI_ENABLED", "false")
	defer os.Unsetenv("PUBLIC_BI_ENABLED")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bi/public", nil)
	biRouter().ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

// With the flag on and no database connected the feed serves synthetic
// rows so dashboard refreshes never fail.
func TestPublicBIFeedDemoFallback(t *testing.T) {
	os.Setenv("PUBLIC_BI_ENABLED", "true")
	defer os.Unsetenv("PUBLIC_BI_ENABLED")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bi/public", nil)
	biRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	header := strings.SplitN(body, "\n", 2)[0]
	header = strings.TrimRight(header, "\r")
	want := "TransactionID,Date,Description,CategoryName,CategoryType,TransactionType,Amount,PaymentMethod,Tags,CreatedAt"
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}
	if lines := strings.Count(strings.TrimSpace(body), "\n"); lines < 1 {
		t.Error("expected demo rows in feed")
	}
}
