package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

// EventHandler handles community event endpoints.
type EventHandler struct {
	events service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// EventRequest represents an event create/update request.
type EventRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Type        string `json:"type" validate:"omitempty,oneof=weekly monthly special"`
}

func (r EventRequest) toInput() service.EventInput {
	date, _ := time.Parse(dateLayout, r.Date)
	eventType := r.Type
	if eventType == "" {
		eventType = "special"
	}
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Type:        eventType,
	}
}

// List godoc
// @Summary List events, date ascending
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    events,
	})
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event"
// @Success 201 {object} map[string]interface{}
// @Router /admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.events.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    event,
		"message": "האירוע נוצר בהצלחה",
	})
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.events.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    event,
		"message": "האירוע עודכן בהצלחה",
	})
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "האירוע נמחק בהצלחה",
	})
}
