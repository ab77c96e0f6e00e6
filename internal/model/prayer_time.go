package model

import (
	"errors"
	"time"
)

// ErrInvalidSchedule is returned when stored columns violate the
// weekday/holiday exclusivity rule.
var ErrInvalidSchedule = errors.New("prayer time has both weekday and holiday set")

// Schedule says when a prayer recurs: on a fixed weekday or on holidays.
// Exactly one of the two variants holds; the zero value is Sunday.
type Schedule struct {
	holiday bool
	weekday time.Weekday
}

// WeekdaySchedule returns the variant for a prayer held on a fixed weekday.
func WeekdaySchedule(d time.Weekday) (Schedule, error) {
	if d < time.Sunday || d > time.Saturday {
		return Schedule{}, ErrInvalidSchedule
	}
	return Schedule{weekday: d}, nil
}

// HolidaySchedule returns the variant for a prayer held on holidays.
func HolidaySchedule() Schedule {
	return Schedule{holiday: true}
}

// IsHoliday reports whether this is the holiday variant.
func (s Schedule) IsHoliday() bool { return s.holiday }

// Weekday returns the weekday and true for the weekday variant.
func (s Schedule) Weekday() (time.Weekday, bool) {
	if s.holiday {
		return 0, false
	}
	return s.weekday, true
}

// PrayerTime is a single service in the prayer schedule. The two storage
// columns DayOfWeek and IsHoliday encode the Schedule variant: DayOfWeek is
// null exactly when IsHoliday is true.
type PrayerTime struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Time      string    `json:"time" gorm:"size:5;not null"` // HH:MM
	DayOfWeek *int      `json:"dayOfWeek" gorm:"index"`
	IsHoliday bool      `json:"isHoliday" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetSchedule flattens the variant into the storage columns.
func (p *PrayerTime) SetSchedule(s Schedule) {
	if s.IsHoliday() {
		p.IsHoliday = true
		p.DayOfWeek = nil
		return
	}
	d, _ := s.Weekday()
	day := int(d)
	p.IsHoliday = false
	p.DayOfWeek = &day
}

// Schedule reconstructs the variant from the storage columns.
func (p *PrayerTime) Schedule() (Schedule, error) {
	if p.IsHoliday {
		if p.DayOfWeek != nil {
			return Schedule{}, ErrInvalidSchedule
		}
		return HolidaySchedule(), nil
	}
	if p.DayOfWeek == nil {
		return Schedule{}, ErrInvalidSchedule
	}
	return WeekdaySchedule(time.Weekday(*p.DayOfWeek))
}
