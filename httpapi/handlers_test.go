package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering/models"
	"food-ordering/services"
)

type stubCatalog struct {
	data *models.FoodData
	cats []models.Category
	err  error
}

func (s stubCatalog) FoodData(context.Context) (*models.FoodData, error) { return s.data, s.err }

func (s stubCatalog) Categories(context.Context) ([]models.Category, error) { return s.cats, s.err }

type countingSender struct {
	calls int
	err   error
}

func (s *countingSender) Send(context.Context, string, string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "SM123", nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServer(t *testing.T, catalog services.CatalogReader, sender *countingSender, dev bool) http.Handler {
	t.Helper()
	log := quietLogger()
	gw := services.NewNotificationGateway(sender, "twilio", "+919411336893", nil, log)
	return NewRouter(NewHandler(catalog, gw, log, dev), []string{"http://localhost:3000"}, log)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestGetFoodData(t *testing.T) {
	catalog := stubCatalog{data: &models.FoodData{
		FoodItems:      []models.FoodItem{{ID: "A", Name: "Margherita", CategoryID: "c1", IsAvailable: true, Options: map[string]float64{"Large": 200}}},
		FoodCategories: []models.Category{{ID: "c1", Name: "Pizza"}},
	}}
	rec, body := do(t, newServer(t, catalog, &countingSender{}, false), http.MethodGet, "/api/foodData", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	items := body["foodItems"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].(map[string]any)["_id"])
	assert.Len(t, body["foodCategories"], 1)
}

func TestGetFoodData_NoItems(t *testing.T) {
	rec, body := do(t, newServer(t, stubCatalog{err: services.ErrNotFound}, &countingSender{}, false), http.MethodGet, "/api/foodData", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No food items found", body["error"])
}

func TestGetFoodData_StoreErrorDetails(t *testing.T) {
	catalog := stubCatalog{err: errors.New("query food items: connection refused")}

	rec, body := do(t, newServer(t, catalog, &countingSender{}, false), http.MethodGet, "/api/foodData", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error", body["error"])
	assert.NotContains(t, body, "details")

	rec, body = do(t, newServer(t, catalog, &countingSender{}, true), http.MethodGet, "/api/foodData", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "query food items: connection refused", body["details"])
}

func TestGetCategories(t *testing.T) {
	h := newServer(t, stubCatalog{cats: []models.Category{{ID: "c1", Name: "Pizza"}}}, &countingSender{}, false)
	rec, body := do(t, h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["categories"], 1)

	h = newServer(t, stubCatalog{err: services.ErrNotFound}, &countingSender{}, false)
	rec, body = do(t, h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No categories found", body["error"])

	h = newServer(t, stubCatalog{err: errors.New("boom")}, &countingSender{}, false)
	rec, body = do(t, h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch categories", body["error"])
}

func TestSendOrderNotification_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty items", `{"items":[],"customer":{"name":"Asha","phone":"9876543210","address":"MG Road"},"total":0}`},
		{"missing items", `{"customer":{"name":"Asha"}}`},
		{"items not an array", `{"items":"pizza","customer":{"name":"Asha"}}`},
		{"missing customer", `{"items":[{"_id":"A","name":"Margherita","option":"Large","price":200,"quantity":1}],"total":200}`},
		{"not json", `order please`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &countingSender{}
			rec, body := do(t, newServer(t, stubCatalog{}, sender, false), http.MethodPost, "/api/sendOrderNotification", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Invalid order data.", body["error"])
			assert.Zero(t, sender.calls)
		})
	}
}

const validOrder = `{
	"items":[{"_id":"A","name":"Margherita","option":"Large","price":200,"quantity":2}],
	"customer":{"name":"Asha","phone":"9876543210","address":"MG Road"},
	"total":400,
	"orderId":"ORD-1700000000000",
	"orderTime":"2023-11-14T22:13:20Z"
}`

func TestSendOrderNotification_OK(t *testing.T) {
	sender := &countingSender{}
	rec, body := do(t, newServer(t, stubCatalog{}, sender, false), http.MethodPost, "/api/sendOrderNotification", validOrder)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "SM123", body["messageSid"])
	assert.Equal(t, 1, sender.calls)
}

func TestSendOrderNotification_ProviderFailure(t *testing.T) {
	sender := &countingSender{err: errors.New("21211 invalid To number")}

	rec, body := do(t, newServer(t, stubCatalog{}, sender, false), http.MethodPost, "/api/sendOrderNotification", validOrder)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send WhatsApp message.", body["error"])
	assert.NotContains(t, body, "details")

	rec, body = do(t, newServer(t, stubCatalog{}, sender, true), http.MethodPost, "/api/sendOrderNotification", validOrder)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body["details"], "21211")
}

func TestRootAndHealth(t *testing.T) {
	h := newServer(t, stubCatalog{}, &countingSender{}, false)

	rec, _ := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World!", rec.Body.String())

	rec, body := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCORS(t *testing.T) {
	h := newServer(t, stubCatalog{cats: []models.Category{{ID: "c1"}}}, &countingSender{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
