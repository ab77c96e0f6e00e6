package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shul/internal/model"
	"shul/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the part of the account echoed back after login.
type UserSummary struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}

// Login godoc
// @Summary Authenticate an admin and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
		Token: token,
	})
}
