package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "shul/internal/errors"
	"shul/internal/model"
)

// MockPrayerTimeRepository is a mock implementation of PrayerTimeRepository.
type MockPrayerTimeRepository struct {
	mock.Mock
}

func (m *MockPrayerTimeRepository) Create(ctx context.Context, prayerTime *model.PrayerTime) error {
	args := m.Called(ctx, prayerTime)
	return args.Error(0)
}

func (m *MockPrayerTimeRepository) Update(ctx context.Context, prayerTime *model.PrayerTime) error {
	args := m.Called(ctx, prayerTime)
	return args.Error(0)
}

func (m *MockPrayerTimeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPrayerTimeRepository) FindByID(ctx context.Context, id uint) (*model.PrayerTime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrayerTime), args.Error(1)
}

func (m *MockPrayerTimeRepository) List(ctx context.Context, holidayOnly bool) ([]model.PrayerTime, error) {
	args := m.Called(ctx, holidayOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PrayerTime), args.Error(1)
}

func (m *MockPrayerTimeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestPrayerTimeService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         PrayerTimeInput
		wantInvalid   bool
		wantDayOfWeek *int
		wantHoliday   bool
	}{
		{
			name:          "weekday prayer",
			input:         PrayerTimeInput{Name: "שחרית", Time: "06:30", DayOfWeek: intPtr(2)},
			wantDayOfWeek: intPtr(2),
		},
		{
			name:        "holiday prayer",
			input:       PrayerTimeInput{Name: "מוסף", Time: "10:00", IsHoliday: true},
			wantHoliday: true,
		},
		{
			name:        "holiday prayer with a weekday",
			input:       PrayerTimeInput{Name: "מוסף", Time: "10:00", DayOfWeek: intPtr(3), IsHoliday: true},
			wantInvalid: true,
		},
		{
			name:        "weekday prayer without a day",
			input:       PrayerTimeInput{Name: "שחרית", Time: "06:30"},
			wantInvalid: true,
		},
		{
			name:        "day of week out of range",
			input:       PrayerTimeInput{Name: "שחרית", Time: "06:30", DayOfWeek: intPtr(7)},
			wantInvalid: true,
		},
		{
			name:        "negative day of week",
			input:       PrayerTimeInput{Name: "שחרית", Time: "06:30", DayOfWeek: intPtr(-1)},
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPrayerTimeRepository)
			if !tt.wantInvalid {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PrayerTime")).Return(nil)
			}

			service := NewPrayerTimeService(mockRepo)
			prayerTime, err := service.Create(context.Background(), tt.input)

			if tt.wantInvalid {
				var validationErr *apperrors.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, prayerTime)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, prayerTime)
			assert.Equal(t, tt.wantHoliday, prayerTime.IsHoliday)
			if tt.wantDayOfWeek == nil {
				assert.Nil(t, prayerTime.DayOfWeek)
			} else {
				assert.NotNil(t, prayerTime.DayOfWeek)
				assert.Equal(t, *tt.wantDayOfWeek, *prayerTime.DayOfWeek)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// Switching a weekday prayer to the holiday schedule must clear the weekday.
func TestPrayerTimeService_Update_SwitchVariant(t *testing.T) {
	mockRepo := new(MockPrayerTimeRepository)
	existingDay := 4
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.PrayerTime{
		Name:      "מנחה",
		Time:      "18:30",
		DayOfWeek: &existingDay,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PrayerTime")).Return(nil)

	service := NewPrayerTimeService(mockRepo)
	prayerTime, err := service.Update(context.Background(), 9, PrayerTimeInput{
		Name:      "מנחה של חג",
		Time:      "17:30",
		IsHoliday: true,
	})

	assert.NoError(t, err)
	assert.True(t, prayerTime.IsHoliday)
	assert.Nil(t, prayerTime.DayOfWeek)
	mockRepo.AssertExpectations(t)
}
