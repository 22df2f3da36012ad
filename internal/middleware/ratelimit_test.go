package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/config"
	"perfmeter/internal/middleware"
)

type limitedResponse struct {
	Error      string `json:"error"`
	Class      string `json:"class"`
	Budget     string `json:"budget"`
	RetryAfter int    `json:"retry_after"`
}

func newLimitedEcho(cfg *config.RateLimitConfig) (*echo.Echo, *middleware.ReportLimiter) {
	limiter := middleware.NewReportLimiter(cfg, slog.New(slog.DiscardHandler))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	e := echo.New()
	g := e.Group("/api/v1/performance", limiter.Middleware())
	g.GET("", ok)
	g.GET("/:class", ok)
	g.POST("/:class/reset", ok)
	return e, limiter
}

func send(e *echo.Echo, method, target, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func report(e *echo.Echo, ip, class string) *httptest.ResponseRecorder {
	return send(e, http.MethodGet, "/api/v1/performance/"+class, ip, "")
}

func reset(e *echo.Echo, ip, class string) *httptest.ResponseRecorder {
	return send(e, http.MethodPost, "/api/v1/performance/"+class+"/reset", ip, "")
}

func strictLimit(secret string) *config.RateLimitConfig {
	return &config.RateLimitConfig{
		RPS:           0.25,
		Burst:         1,
		WriteRPS:      0.25,
		WriteBurst:    1,
		ExpireMinutes: 1,
		BypassSecret:  secret,
	}
}

func decodeLimited(t *testing.T, rec *httptest.ResponseRecorder) limitedResponse {
	t.Helper()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp limitedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestReportLimiter_AllowsReadsUnderBudget(t *testing.T) {
	e, _ := newLimitedEcho(&config.RateLimitConfig{RPS: 10, Burst: 5, WriteRPS: 1, WriteBurst: 1, ExpireMinutes: 1})

	for i := range 5 {
		assert.Equal(t, http.StatusOK, report(e, "192.168.1.1", "demo.Inventory").Code, "request %d should succeed", i)
	}
}

func TestReportLimiter_DeniesReadOverBudget(t *testing.T) {
	e, limiter := newLimitedEcho(strictLimit(""))

	require.Equal(t, http.StatusOK, report(e, "192.168.1.2", "perfmeter%2Fdemo.Inventory").Code)
	rec := report(e, "192.168.1.2", "perfmeter%2Fdemo.Inventory")

	resp := decodeLimited(t, rec)
	assert.Equal(t, "4", rec.Header().Get("Retry-After"))
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.Equal(t, "perfmeter/demo.Inventory", resp.Class)
	assert.Equal(t, middleware.ReadBudget, resp.Budget)
	assert.Equal(t, 4, resp.RetryAfter)

	reads, writes := limiter.Denied()
	assert.Equal(t, uint64(1), reads)
	assert.Zero(t, writes)
}

func TestReportLimiter_ClassesHaveSeparateBudgets(t *testing.T) {
	e, _ := newLimitedEcho(strictLimit(""))

	require.Equal(t, http.StatusOK, report(e, "192.168.1.3", "demo.Inventory").Code)
	require.Equal(t, http.StatusTooManyRequests, report(e, "192.168.1.3", "demo.Inventory").Code)

	assert.Equal(t, http.StatusOK, report(e, "192.168.1.3", "http.Routes").Code)
}

func TestReportLimiter_ListingUsesItsOwnKey(t *testing.T) {
	e, _ := newLimitedEcho(strictLimit(""))

	require.Equal(t, http.StatusOK, send(e, http.MethodGet, "/api/v1/performance", "192.168.1.4", "").Code)
	rec := send(e, http.MethodGet, "/api/v1/performance", "192.168.1.4", "")
	assert.Equal(t, "*", decodeLimited(t, rec).Class)

	assert.Equal(t, http.StatusOK, report(e, "192.168.1.4", "demo.Inventory").Code)
}

func TestReportLimiter_WritesHaveOwnBudget(t *testing.T) {
	e, limiter := newLimitedEcho(strictLimit(""))

	require.Equal(t, http.StatusOK, report(e, "192.168.1.5", "demo.Inventory").Code)
	require.Equal(t, http.StatusTooManyRequests, report(e, "192.168.1.5", "demo.Inventory").Code)

	require.Equal(t, http.StatusOK, reset(e, "192.168.1.5", "demo.Inventory").Code, "reads do not spend the write budget")
	resp := decodeLimited(t, reset(e, "192.168.1.5", "demo.Inventory"))
	assert.Equal(t, middleware.WriteBudget, resp.Budget)

	reads, writes := limiter.Denied()
	assert.Equal(t, uint64(1), reads)
	assert.Equal(t, uint64(1), writes)
}

func TestReportLimiter_DifferentIPsHaveSeparateBudgets(t *testing.T) {
	e, _ := newLimitedEcho(strictLimit(""))

	assert.Equal(t, http.StatusOK, report(e, "192.168.1.6", "demo.Inventory").Code)
	assert.Equal(t, http.StatusOK, report(e, "192.168.1.7", "demo.Inventory").Code)
}

func TestReportLimiter_Bypass(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{"correct secret bypasses", "bench_secret", "bench_secret", http.StatusOK},
		{"wrong secret limited", "bench_secret", "wrong_secret", http.StatusTooManyRequests},
		{"empty secret disables bypass", "", "any_value", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newLimitedEcho(strictLimit(tt.secret))

			var last int
			for range 3 {
				last = send(e, http.MethodPost, "/api/v1/performance/demo.Inventory/reset", "192.168.1.8", tt.header).Code
			}
			assert.Equal(t, tt.wantStatus, last)
		})
	}
}
