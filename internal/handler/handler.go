package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shul/internal/errors"
)

// httpError converts a domain error into echo's error type carrying the
// localized response body. Internal detail stays on the error for the logger.
func httpError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bindAndValidate decodes the body and runs declarative validation before any
// store access.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "גוף הבקשה אינו תקין",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return httpError(err)
	}
	return nil
}

// formUint parses a numeric multipart form field.
func formUint(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.FormValue(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "מזהה לא תקין",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
