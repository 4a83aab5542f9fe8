package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/hasselmann007-dev/pink-store-v2/catalog"
	"github.com/hasselmann007-dev/pink-store-v2/controllers"
	"github.com/hasselmann007-dev/pink-store-v2/models"
	"github.com/hasselmann007-dev/pink-store-v2/providers"
	"github.com/hasselmann007-dev/pink-store-v2/repository"
	"github.com/hasselmann007-dev/pink-store-v2/routes"
	"github.com/hasselmann007-dev/pink-store-v2/services"
)

// ---- concrete mock implementing providers.PaymentProvider ----

type mockProvider struct {
	result *providers.TransactionResult
	err    error
}

func (m *mockProvider) CreateTransaction(_ context.Context, _ *models.CheckoutRequest, _ models.PricingResult) (*providers.TransactionResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// ---- helpers ----

func setupRouter(provider providers.PaymentProvider, store repository.PaymentStore, webhookSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()

	cat := catalog.New()
	svc := services.NewCheckoutService(cat, provider, logger)

	r := gin.New()
	routes.Register(r,
		controllers.NewCheckoutController(svc),
		controllers.NewWebhookController(store, webhookSecret, logger),
		controllers.NewProductController(cat),
	)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"cart": []map[string]interface{}{
			{"id": "1", "name": "VF Desodorante Colônia 75 ml", "price": 87.00, "qty": 1},
		},
		"customer":      map[string]string{"name": "Maria", "email": "maria@example.com"},
		"paymentMethod": "PIX",
	}
}

// ---- tests ----

func TestCheckoutEndpoint_Success(t *testing.T) {
	provider := &mockProvider{
		result: &providers.TransactionResult{
			Payment: json.RawMessage(`{"id":"tx-1","status":"pending"}`),
			Pix: models.PixInfo{
				Qrcode:         "000201pix",
				ExpirationDate: "2026-09-02T00:00:00Z",
				Amount:         10190,
			},
			Status: "pending",
		},
	}
	r := setupRouter(provider, repository.NewMemoryPaymentStore(), "")

	w := postJSON(r, "/api/checkout", checkoutBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "pending", resp["status"])

	pix := resp["pix"].(map[string]interface{})
	assert.Equal(t, "000201pix", pix["qrcode"])
	assert.Equal(t, "2026-09-02T00:00:00Z", pix["expirationDate"])
	assert.Equal(t, float64(10190), pix["amount"])

	payment := resp["payment"].(map[string]interface{})
	assert.Equal(t, "tx-1", payment["id"])
}

func TestCheckoutEndpoint_EmptyCart(t *testing.T) {
	r := setupRouter(&mockProvider{}, repository.NewMemoryPaymentStore(), "")

	body := checkoutBody()
	body["cart"] = []map[string]interface{}{}
	w := postJSON(r, "/api/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["ok"])
	assert.NotEmpty(t, resp["error"])
}

func TestCheckoutEndpoint_MethodNotAllowed(t *testing.T) {
	r := setupRouter(&mockProvider{}, repository.NewMemoryPaymentStore(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCheckoutEndpoint_GatewayErrorPassthrough(t *testing.T) {
	provider := &mockProvider{
		err: &providers.GatewayError{
			StatusCode: http.StatusBadGateway,
			Message:    "gateway indisponível",
			Body:       json.RawMessage(`{"message":"gateway indisponível"}`),
		},
	}
	r := setupRouter(provider, repository.NewMemoryPaymentStore(), "")

	w := postJSON(r, "/api/checkout", checkoutBody())

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, float64(http.StatusBadGateway), resp["gatewayStatus"])
	assert.NotNil(t, resp["gatewayResponse"])
}

func TestCheckoutEndpoint_BadJSON(t *testing.T) {
	r := setupRouter(&mockProvider{}, repository.NewMemoryPaymentStore(), "")

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte("not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(&mockProvider{}, repository.NewMemoryPaymentStore(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["ok"])
	assert.NotEmpty(t, resp["message"])
}

func TestProductEndpoints(t *testing.T) {
	r := setupRouter(&mockProvider{}, repository.NewMemoryPaymentStore(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var listResp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.Len(t, listResp["products"], 8)

	req = httptest.NewRequest(http.MethodGet, "/api/products/4", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var getResp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &getResp)
	product := getResp["product"].(map[string]interface{})
	assert.Equal(t, 89.90, product["price"])

	req = httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
