package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

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

func newProtectedEcho(jwtService *JWTService, users *MockUserRepository) *echo.Echo {
	e := echo.New()
	group := e.Group("/admin", echojwt.WithConfig(JWTConfig(jwtService)), AdminOnly(users))
	group.GET("/ping", func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "user missing from context")
		}
		return c.JSON(http.StatusOK, echo.Map{"username": user.Username})
	})
	return e
}

func TestAdminRoutes(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name           string
		authorization  string
		setupMock      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "valid admin token",
			authorization: func() string {
				token, _ := jwtService.GenerateToken(1, model.RoleAdmin)
				return "Bearer " + token
			}(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:       1,
					Username: "gabbai",
					Role:     model.RoleAdmin,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no token",
			authorization:  "",
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authorization:  "Bearer not-a-token",
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token for a deleted user",
			authorization: func() string {
				token, _ := jwtService.GenerateToken(2, model.RoleAdmin)
				return "Bearer " + token
			}(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(2)).Return(nil, apperrors.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token signed with another secret",
			authorization: func() string {
				token, _ := NewJWTService("other-secret").GenerateToken(1, model.RoleAdmin)
				return "Bearer " + token
			}(),
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			e := newProtectedEcho(jwtService, mockRepo)

			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "gabbai")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
