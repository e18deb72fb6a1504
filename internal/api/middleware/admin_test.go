package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func protectedHandler(adminCode string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(adminCode, nopLogger{})(next)
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		query      string
		wantStatus int
	}{
		{name: "valid header", configured: "secret", header: "secret", wantStatus: http.StatusOK},
		{name: "valid query param", configured: "secret", query: "secret", wantStatus: http.StatusOK},
		{name: "query param wins over header", configured: "secret", query: "secret", header: "wrong", wantStatus: http.StatusOK},
		{name: "wrong code", configured: "secret", header: "wrong", wantStatus: http.StatusForbidden},
		{name: "missing code", configured: "secret", wantStatus: http.StatusForbidden},
		{name: "empty configured code rejects everything", configured: "", header: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Code", tt.header)
			}
			if tt.query != "" {
				q := req.URL.Query()
				q.Set("code", tt.query)
				req.URL.RawQuery = q.Encode()
			}

			rec := httptest.NewRecorder()
			protectedHandler(tt.configured).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminAuth_ForbiddenBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/groups", nil)
	rec := httptest.NewRecorder()
	protectedHandler("secret").ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden: invalid admin code", body["error"])
}
