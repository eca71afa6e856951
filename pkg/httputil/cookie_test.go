package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := GetTokenFromRequest(r); err == nil {
		t.Error("expected error without token")
	}

	r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "from-cookie"})
	if tok, _ := GetTokenFromRequest(r); tok != "from-cookie" {
		t.Errorf("token = %q, want cookie value", tok)
	}

	r.Header.Set("Authorization", "Bearer from-header")
	if tok, _ := GetTokenFromRequest(r); tok != "from-header" {
		t.Errorf("token = %q, want header value", tok)
	}
}
