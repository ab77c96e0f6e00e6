package hebcal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "shul/internal/errors"
)

func TestClient_Zmanim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zmanim", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("cfg"))
		assert.Equal(t, "31.778", q.Get("latitude"))
		assert.Equal(t, "35.235", q.Get("longitude"))
		assert.Equal(t, "2026-08-27", q.Get("date"))
		assert.Equal(t, "Asia/Jerusalem", q.Get("tzid"))
		_, _ = w.Write([]byte(`{"times": {"sunrise": "06:13"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	raw, err := client.Zmanim(context.Background(), "31.778", "35.235", "2026-08-27")

	assert.NoError(t, err)
	assert.JSONEq(t, `{"times": {"sunrise": "06:13"}}`, string(raw))
}

func TestClient_ConvertToHebrew(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/converter", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("g2h"))
		assert.Equal(t, "2026", q.Get("gy"))
		assert.Equal(t, "8", q.Get("gm"))
		assert.Equal(t, "27", q.Get("gd"))
		_, _ = w.Write([]byte(`{"hebrew": "י״ד באלול תשפ״ו", "hy": 5786, "hm": "Elul", "hd": 14}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	converted, err := client.ConvertToHebrew(context.Background(), time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, "י״ד באלול תשפ״ו", converted.Hebrew)
	assert.Equal(t, 5786, converted.Hy)
	assert.Equal(t, 14, converted.Hd)
}

func TestClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.Holidays(context.Background(), "31.778", "35.235")

	var gatewayErr *apperrors.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "hebcal", gatewayErr.Provider)
}
