package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"shul/internal/auth"
	apperrors "shul/internal/errors"
	"shul/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "gabbai",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				m.On("FindByUsername", mock.Anything, "gabbai").Return(&model.User{
					ID:           7,
					Username:     "gabbai",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleAdmin,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "gabbai",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				m.On("FindByUsername", mock.Anything, "gabbai").Return(&model.User{
					ID:           7,
					Username:     "gabbai",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleAdmin,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// A freshly issued token must round-trip through validation carrying the
// user's identity and role.
func TestAuthService_Login_TokenClaims(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "gabbai").Return(&model.User{
		ID:           42,
		Username:     "gabbai",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleAdmin,
	}, nil)

	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockRepo, jwtService)

	token, _, err := service.Login(context.Background(), "gabbai", "password123")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, claims.IssuedAt.Time.Add(auth.TokenExpiry), claims.ExpiresAt.Time)
}
