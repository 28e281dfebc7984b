package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datafiscal/finanzas_backend/utils"
)

func TestApiTokenIssuesValidJwt(t *testing.T) {
	r := authedRouter(42)
	r.POST("/auth/api-token", ApiToken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/api-token", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response.Token == "" {
		t.Fatal("empty token in response")
	}

	parsed, err := utils.JwtValidate(response.Token)
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}
	claims, ok := parsed.Claims.(*utils.JwtCustomClaim)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims.ID != 42 {
		t.Errorf("claims.ID = %d, want 42", claims.ID)
	}
}

func TestApiTokenRequiresAuth(t *testing.T) {
	r := authedRouter(0)
	r.POST("/auth/api-token", ApiToken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/api-token", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
