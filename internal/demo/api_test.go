package demo_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/demo"
)

func newAPIEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	demo.NewAPI(newInventory(t, nil, nil), slog.New(slog.DiscardHandler)).Register(e)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAPI_List(t *testing.T) {
	e := newAPIEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []demo.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestAPI_Lookup(t *testing.T) {
	e := newAPIEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/inventory/A-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anvil")

	rec = do(e, http.MethodGet, "/api/v1/inventory/Z-9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Reserve(t *testing.T) {
	tests := []struct {
		name       string
		sku        string
		body       string
		wantStatus int
	}{
		{"reserved", "A-1", `{"quantity":2}`, http.StatusOK},
		{"out of stock", "B-2", `{"quantity":1}`, http.StatusConflict},
		{"invalid quantity", "A-1", `{"quantity":0}`, http.StatusBadRequest},
		{"unknown sku", "Z-9", `{"quantity":1}`, http.StatusNotFound},
		{"invalid json", "A-1", `invalid json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newAPIEcho(t)

			rec := do(e, http.MethodPost, "/api/v1/inventory/"+tt.sku+"/reserve", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPI_Restock(t *testing.T) {
	e := newAPIEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/inventory/B-2/restock", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var item demo.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, 3, item.Stock)
}
