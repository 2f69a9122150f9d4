package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveWithSecurity(path string, skip ...string) *httptest.ResponseRecorder {
	h := Security(skip...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestSecuritySetsAllHeaders(t *testing.T) {
	resp := serveWithSecurity("/api/leads")

	for name, want := range securityHeaders {
		if got := resp.Header().Get(name); got != want {
			t.Errorf("header %s = %q, want %q", name, got, want)
		}
	}
}

func TestSecuritySkipsExemptPrefixes(t *testing.T) {
	resp := serveWithSecurity("/api-docs", "/api-docs")

	if got := resp.Header().Get("Content-Security-Policy"); got != "" {
		t.Errorf("expected no CSP header on exempt path, got %q", got)
	}
	if got := resp.Header().Get("X-Frame-Options"); got != "" {
		t.Errorf("expected no X-Frame-Options on exempt path, got %q", got)
	}
}

func TestSecuritySkipMatchesPrefixOnly(t *testing.T) {
	resp := serveWithSecurity("/api/leads", "/api-docs")

	if got := resp.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected headers on non-exempt path, got %q", got)
	}
}
