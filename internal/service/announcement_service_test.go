package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "shul/internal/errors"
	"shul/internal/model"
)

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, announcement *model.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id uint) (*model.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListAll(ctx context.Context) ([]model.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListActive(ctx context.Context, now time.Time) ([]model.Announcement, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Announcement), args.Error(1)
}

func TestAnnouncementService_Create(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       AnnouncementInput
		setupMock   func(*MockAnnouncementRepository)
		wantInvalid bool
	}{
		{
			name: "valid window",
			input: AnnouncementInput{
				Title:     "שיעור תורה שבועי",
				Content:   "בכל יום שלישי בשעה 20:00",
				StartDate: start,
				EndDate:   start.AddDate(0, 1, 0),
				IsActive:  true,
			},
			setupMock: func(m *MockAnnouncementRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).Return(nil)
			},
		},
		{
			name: "start after end",
			input: AnnouncementInput{
				Title:     "הודעה",
				Content:   "תוכן",
				StartDate: start,
				EndDate:   start.AddDate(0, 0, -1),
			},
			setupMock:   func(m *MockAnnouncementRepository) {},
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAnnouncementRepository)
			tt.setupMock(mockRepo)

			service := NewAnnouncementService(mockRepo)
			announcement, err := service.Create(context.Background(), tt.input)

			if tt.wantInvalid {
				var validationErr *apperrors.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, announcement)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, announcement)
				assert.Equal(t, tt.input.Title, announcement.Title)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAnnouncementService_Update_InvalidWindow(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	service := NewAnnouncementService(mockRepo)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.Update(context.Background(), 1, AnnouncementInput{
		Title:     "הודעה",
		Content:   "תוכן",
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	// The window check runs before any store access.
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
