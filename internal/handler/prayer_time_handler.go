package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

// PrayerTimeHandler handles prayer schedule endpoints.
type PrayerTimeHandler struct {
	prayerTimes service.PrayerTimeService
}

// NewPrayerTimeHandler creates a new prayer time handler.
func NewPrayerTimeHandler(prayerTimes service.PrayerTimeService) *PrayerTimeHandler {
	return &PrayerTimeHandler{prayerTimes: prayerTimes}
}

// PrayerTimeRequest represents a create/update request. A holiday prayer has
// no dayOfWeek; a weekday prayer needs one.
type PrayerTimeRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	DayOfWeek *int   `json:"dayOfWeek"`
	IsHoliday bool   `json:"isHoliday"`
}

// List godoc
// @Summary List the prayer schedule, time ascending
// @Tags prayer-times
// @Produce json
// @Param holiday query bool false "Only holiday prayers"
// @Success 200 {object} map[string]interface{}
// @Router /prayer-times [get]
func (h *PrayerTimeHandler) List(c echo.Context) error {
	holidayOnly := c.QueryParam("holiday") == "true"
	prayerTimes, err := h.prayerTimes.List(c.Request().Context(), holidayOnly)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    prayerTimes,
	})
}

// Create godoc
// @Summary Create a prayer time
// @Tags prayer-times
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PrayerTimeRequest true "Prayer time"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/prayer-times [post]
func (h *PrayerTimeHandler) Create(c echo.Context) error {
	var req PrayerTimeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prayerTime, err := h.prayerTimes.Create(c.Request().Context(), service.PrayerTimeInput{
		Name:      req.Name,
		Time:      req.Time,
		DayOfWeek: req.DayOfWeek,
		IsHoliday: req.IsHoliday,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    prayerTime,
		"message": "זמן התפילה נוצר בהצלחה",
	})
}

// Update godoc
// @Summary Update a prayer time
// @Tags prayer-times
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prayer time ID"
// @Param request body PrayerTimeRequest true "Prayer time"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/prayer-times/{id} [put]
func (h *PrayerTimeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req PrayerTimeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prayerTime, err := h.prayerTimes.Update(c.Request().Context(), id, service.PrayerTimeInput{
		Name:      req.Name,
		Time:      req.Time,
		DayOfWeek: req.DayOfWeek,
		IsHoliday: req.IsHoliday,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    prayerTime,
		"message": "זמן התפילה עודכן בהצלחה",
	})
}

// Delete godoc
// @Summary Delete a prayer time
// @Tags prayer-times
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prayer time ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/prayer-times/{id} [delete]
func (h *PrayerTimeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.prayerTimes.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "זמן התפילה נמחק בהצלחה",
	})
}
