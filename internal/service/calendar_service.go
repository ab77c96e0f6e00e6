package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shul/internal/cache"
	apperrors "shul/internal/errors"
	"shul/internal/hebcal"
)

// zmanimTTL bounds how long a combined calendar lookup is served from cache.
// Keys carry the calendar day, so a stale entry can outlive its day by at
// most the TTL.
const zmanimTTL = time.Hour

// DailyTimes bundles the two Hebcal feeds the schedule page renders together.
type DailyTimes struct {
	Zmanim   json.RawMessage `json:"zmanim"`
	Holidays json.RawMessage `json:"holidays"`
}

// HebrewDate is today's date in both calendars.
type HebrewDate struct {
	Date       time.Time `json:"date"`
	HebrewDate string    `json:"hebrewDate"`
}

// CalendarService serves halachic times and Hebrew dates, caching per
// coordinate and calendar day. This is purely derived data; the relational
// store is never involved.
type CalendarService interface {
	DailyTimes(ctx context.Context, latitude, longitude string) (*DailyTimes, error)
	Today(ctx context.Context) (*HebrewDate, error)
}

type calendarService struct {
	hebcal *hebcal.Client
	cache  *cache.Client
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(hebcalClient *hebcal.Client, cacheClient *cache.Client) CalendarService {
	return &calendarService{hebcal: hebcalClient, cache: cacheClient}
}

func (s *calendarService) DailyTimes(ctx context.Context, latitude, longitude string) (*DailyTimes, error) {
	if latitude == "" || longitude == "" {
		return nil, apperrors.ErrMissingCoordinates
	}

	day := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("zmanim:%s:%s:%s", latitude, longitude, day)

	var cached DailyTimes
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return &cached, nil
	}

	zmanim, err := s.hebcal.Zmanim(ctx, latitude, longitude, day)
	if err != nil {
		return nil, err
	}
	holidays, err := s.hebcal.Holidays(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	times := &DailyTimes{Zmanim: zmanim, Holidays: holidays}
	_ = s.cache.SetJSON(ctx, key, times, zmanimTTL)

	return times, nil
}

func (s *calendarService) Today(ctx context.Context) (*HebrewDate, error) {
	now := time.Now()
	key := "hebdate:" + now.Format("2006-01-02")

	var cached HebrewDate
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return &cached, nil
	}

	converted, err := s.hebcal.ConvertToHebrew(ctx, now)
	if err != nil {
		return nil, err
	}

	today := &HebrewDate{Date: now, HebrewDate: converted.Hebrew}
	_ = s.cache.SetJSON(ctx, key, today, zmanimTTL)

	return today, nil
}
