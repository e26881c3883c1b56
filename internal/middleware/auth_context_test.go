package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	user, pass string
	err        error
}

func (f fakeVerifier) VerifyAdmin(_ context.Context, username, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return username == f.user && password == f.pass, nil
}

func adminEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := GetAdmin(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(a.Username))
	})
}

func TestRequireAdmin_BasicAuth(t *testing.T) {
	h := RequireAdmin(fakeVerifier{user: "admin", pass: "admin123"}, nil)(adminEcho())

	cases := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{name: "valid", user: "admin", pass: "admin123", setAuth: true, wantStatus: http.StatusOK},
		{name: "wrong password", user: "admin", pass: "x", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "blank user", user: " ", pass: "admin123", setAuth: true, wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/questionnaires", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Equal(t, "admin", rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin_VerifierFailureIs500(t *testing.T) {
	h := RequireAdmin(fakeVerifier{err: errors.New("db down")}, nil)(adminEcho())

	req := httptest.NewRequest(http.MethodGet, "/admin/adoptions", nil)
	req.SetBasicAuth("admin", "admin123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestRequireAdmin_DevMode(t *testing.T) {
	h := RequireAdmin(nil, nil)(adminEcho())

	req := httptest.NewRequest(http.MethodGet, "/admin/adoptions", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/adoptions", nil)
	req.Header.Set("X-Debug-Admin", "ops")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "ops", rec.Body.String())
}
