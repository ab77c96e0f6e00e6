package auth

import (
	"errors"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "shul/internal/errors"
	"shul/internal/model"
	"shul/internal/repository"
)

// ContextUserKey is the echo context key under which AdminOnly stores the
// re-fetched user record for downstream handlers.
const ContextUserKey = "admin_user"

// JWTConfig builds the echo-jwt configuration guarding admin routes. Parsing
// delegates to the JWTService so missing, malformed, expired and
// badly-signed tokens all surface as distinct localized failures.
func JWTConfig(jwtService *JWTService) echojwt.Config {
	return echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			appErr := apperrors.ErrInvalidToken
			switch {
			case errors.Is(err, apperrors.ErrExpiredToken):
				appErr = apperrors.ErrExpiredToken
			case errors.Is(err, apperrors.ErrInvalidToken):
				appErr = apperrors.ErrInvalidToken
			default:
				header := c.Request().Header.Get(echo.HeaderAuthorization)
				if header == "" || !strings.HasPrefix(header, "Bearer ") {
					appErr = apperrors.ErrMissingToken
				}
			}
			httpErr := apperrors.MapErrorToHTTP(appErr)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}
}

// AdminOnly re-fetches the user referenced by the verified token and confirms
// the account still exists and still holds the admin role. A token therefore
// stops working on the request after its user is deleted or demoted, even
// though it remains cryptographically valid until expiry.
func AdminOnly(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return toHTTPError(apperrors.ErrInvalidToken)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return toHTTPError(apperrors.ErrUserNotFound)
				}
				return toHTTPError(err)
			}

			if user.Role != model.RoleAdmin {
				return toHTTPError(apperrors.ErrInsufficientRole)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated admin set by AdminOnly.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

func toHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
