package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shul/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// MockContactNotifier is a mock implementation of ContactNotifier.
type MockContactNotifier struct {
	mock.Mock
}

func (m *MockContactNotifier) SendContactNotification(name, email, message string) error {
	args := m.Called(name, email, message)
	return args.Error(0)
}

func TestContactService_Submit(t *testing.T) {
	t.Run("stores the row and sends the mail", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockNotifier := new(MockContactNotifier)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)
		mockNotifier.On("SendContactNotification", "רחל", "rachel@example.com", "שאלה לגבי שיעורים").Return(nil)

		service := NewContactService(mockRepo, mockNotifier)
		contact, err := service.Submit(context.Background(), "רחל", "rachel@example.com", "שאלה לגבי שיעורים")

		assert.NoError(t, err)
		assert.Equal(t, model.ContactStatusPending, contact.Status)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("mail failure surfaces after the row is stored", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockNotifier := new(MockContactNotifier)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)
		mockNotifier.On("SendContactNotification", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp refused"))

		service := NewContactService(mockRepo, mockNotifier)
		_, err := service.Submit(context.Background(), "רחל", "rachel@example.com", "שאלה")

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure sends no mail", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockNotifier := new(MockContactNotifier)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(errors.New("db down"))

		service := NewContactService(mockRepo, mockNotifier)
		_, err := service.Submit(context.Background(), "רחל", "rachel@example.com", "שאלה")

		assert.Error(t, err)
		mockNotifier.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything, mock.Anything)
	})
}
