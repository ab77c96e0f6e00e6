package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

const dateLayout = "2006-01-02"

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	announcements service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(announcements service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// AnnouncementRequest represents a create/update request.
type AnnouncementRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Content   string `json:"content" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	IsActive  *bool  `json:"isActive"`
}

func (r *AnnouncementRequest) toInput() service.AnnouncementInput {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return service.AnnouncementInput{
		Title:     r.Title,
		Content:   r.Content,
		StartDate: start,
		EndDate:   end,
		IsActive:  isActive,
	}
}

// ListActive godoc
// @Summary List announcements currently visible on the public site
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /announcements [get]
func (h *AnnouncementHandler) ListActive(c echo.Context) error {
	announcements, err := h.announcements.ListActive(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    announcements,
	})
}

// ListAll godoc
// @Summary List every announcement for the admin panel
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) ListAll(c echo.Context) error {
	announcements, err := h.announcements.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    announcements,
	})
}

// Create godoc
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnnouncementRequest true "Announcement"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req AnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	announcement, err := h.announcements.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    announcement,
		"message": "ההודעה נוצרה בהצלחה",
	})
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body AnnouncementRequest true "Announcement"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	announcement, err := h.announcements.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    announcement,
		"message": "ההודעה עודכנה בהצלחה",
	})
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.announcements.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "ההודעה נמחקה בהצלחה",
	})
}
