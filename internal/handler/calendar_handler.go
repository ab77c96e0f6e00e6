package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

// CalendarHandler handles Hebrew calendar endpoints.
type CalendarHandler struct {
	calendar service.CalendarService
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(calendar service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// Zmanim godoc
// @Summary Daily halachic times and holidays for a location, cached for an hour
// @Tags calendar
// @Produce json
// @Param latitude query string true "Latitude"
// @Param longitude query string true "Longitude"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /zmanim [get]
func (h *CalendarHandler) Zmanim(c echo.Context) error {
	times, err := h.calendar.DailyTimes(c.Request().Context(), c.QueryParam("latitude"), c.QueryParam("longitude"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    times,
	})
}

// HebrewCalendar godoc
// @Summary Today's date on the Hebrew calendar
// @Tags calendar
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errors.ErrorResponse
// @Router /hebrew-calendar [get]
func (h *CalendarHandler) HebrewCalendar(c echo.Context) error {
	today, err := h.calendar.Today(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    today,
	})
}
