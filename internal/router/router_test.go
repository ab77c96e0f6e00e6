package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shul/internal/auth"
	"shul/internal/config"
	"shul/internal/handler"
	"shul/internal/kesher"
	"shul/internal/router"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := &config.Config{UploadDir: t.TempDir()}
	jwtService := auth.NewJWTService("test-secret")
	gateway := kesher.NewClient(kesher.Config{})

	router.Register(e, cfg, jwtService, nil,
		handler.NewAuthHandler(nil),
		handler.NewAnnouncementHandler(nil),
		handler.NewPrayerTimeHandler(nil),
		handler.NewGalleryHandler(nil),
		handler.NewMemorialHandler(nil),
		handler.NewContactHandler(nil),
		handler.NewEventHandler(nil),
		handler.NewPaymentHandler(gateway),
		handler.NewCalendarHandler(nil),
	)
	return e
}

// The gateway read queries are open endpoints next to create-payment, not
// part of the admin group.
func TestRouter_PaymentQueriesArePublic(t *testing.T) {
	e := newTestRouter(t)

	for _, path := range []string{"/api/payments/transactions", "/api/payments/obligations"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			// Reaches the handler without a token: the missing date range is
			// reported, not a missing-token 401 or an unmatched-route 404.
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "MISSING_DATE_RANGE", body["code"])
		})
	}
}

func TestRouter_AdminGroupRequiresToken(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/announcements", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}
