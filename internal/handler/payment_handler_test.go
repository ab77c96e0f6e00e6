package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shul/internal/handler"
	"shul/internal/kesher"
	"shul/internal/router"
)

func newDonationEcho() *echo.Echo {
	e := echo.New()
	e.Validator = router.NewCustomValidator()
	gateway := kesher.NewClient(kesher.Config{})
	e.POST("/api/payments/create-payment", handler.NewPaymentHandler(gateway).CreatePayment)
	return e
}

// Every case here must be rejected by validation before any gateway call; the
// client is configured with no endpoint, so a request that slipped through
// would fail loudly.
func TestPaymentHandler_CreatePayment_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing amount",
			body: `{"name": "משה כהן", "paymentType": "single"}`,
		},
		{
			name: "zero amount",
			body: `{"amount": 0, "name": "משה כהן", "paymentType": "single"}`,
		},
		{
			name: "negative amount",
			body: `{"amount": -18, "name": "משה כהן", "paymentType": "single"}`,
		},
		{
			name: "recurring without config",
			body: `{"amount": 18, "name": "משה כהן", "paymentType": "recurring"}`,
		},
		{
			name: "unknown payment type",
			body: `{"amount": 18, "name": "משה כהן", "paymentType": "weekly"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newDonationEcho()

			req := httptest.NewRequest(http.MethodPost, "/api/payments/create-payment", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}
