package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"shul/internal/cache"
	apperrors "shul/internal/errors"
	"shul/internal/hebcal"
)

// A nil cache client behaves as a permanent miss, so the service is exercised
// without a redis instance.
var noCache *cache.Client

func TestCalendarService_DailyTimes(t *testing.T) {
	var zmanimCalls, holidayCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/zmanim":
			zmanimCalls++
			_, _ = w.Write([]byte(`{"times": {"sunrise": "06:13"}}`))
		case "/hebcal":
			holidayCalls++
			_, _ = w.Write([]byte(`{"items": []}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	service := NewCalendarService(hebcal.NewClientWithBaseURL(server.URL), noCache)

	times, err := service.DailyTimes(context.Background(), "31.778", "35.235")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"times": {"sunrise": "06:13"}}`, string(times.Zmanim))
	assert.JSONEq(t, `{"items": []}`, string(times.Holidays))
	assert.Equal(t, 1, zmanimCalls)
	assert.Equal(t, 1, holidayCalls)
}

func TestCalendarService_DailyTimes_MissingCoordinates(t *testing.T) {
	service := NewCalendarService(hebcal.NewClientWithBaseURL("http://unreachable.invalid"), noCache)

	_, err := service.DailyTimes(context.Background(), "", "35.235")
	assert.ErrorIs(t, err, apperrors.ErrMissingCoordinates)

	_, err = service.DailyTimes(context.Background(), "31.778", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingCoordinates)
}

func TestCalendarService_Today(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/converter", r.URL.Path)
		_, _ = w.Write([]byte(`{"hebrew": "י״ד באלול תשפ״ו"}`))
	}))
	defer server.Close()

	service := NewCalendarService(hebcal.NewClientWithBaseURL(server.URL), noCache)

	today, err := service.Today(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "י״ד באלול תשפ״ו", today.HebrewDate)
	assert.False(t, today.Date.IsZero())
}
