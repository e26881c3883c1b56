package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestRateLimitWrites(t *testing.T) {
	h := RateLimitWrites(RateLimitConfig{RPS: 0.001, Burst: 2})(okHandler())

	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/adoptions", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:3333"))

	// otro cliente tiene su propio bucket
	assert.Equal(t, http.StatusOK, post("10.0.0.2:1111"))

	// las lecturas no consumen tokens
	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	req.RemoteAddr = "10.0.0.1:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitWrites_Disabled(t *testing.T) {
	h := RateLimitWrites(RateLimitConfig{})(okHandler())
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/questionnaire", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientLimiter_EvictsIdle(t *testing.T) {
	l := newClientLimiter(RateLimitConfig{RPS: 1, Burst: 1})
	start := time.Now()

	l.allow("stale", start)
	for i := 0; i < 511; i++ {
		l.allow("fresh", start.Add(time.Hour))
	}
	_, ok := l.byKey["stale"]
	assert.False(t, ok)
	_, ok = l.byKey["fresh"]
	assert.True(t, ok)
}
