package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

// MemorialHandler handles memorial day endpoints.
type MemorialHandler struct {
	memorials service.MemorialService
}

// NewMemorialHandler creates a new memorial day handler.
func NewMemorialHandler(memorials service.MemorialService) *MemorialHandler {
	return &MemorialHandler{memorials: memorials}
}

// MemorialDayRequest represents a memorial day purchase request.
type MemorialDayRequest struct {
	HebrewDate    string `json:"hebrewDate" validate:"required,max=100"`
	GregorianDate string `json:"gregorianDate" validate:"required,datetime=2006-01-02"`
	PurchasedBy   string `json:"purchasedBy" validate:"required,max=255"`
	DedicatedTo   string `json:"dedicatedTo" validate:"required,max=255"`
	Message       string `json:"message" validate:"omitempty,max=1000"`
	PaymentID     string `json:"paymentId" validate:"required,max=100"`
}

// List godoc
// @Summary List purchased memorial days, gregorian date ascending
// @Tags memorial-days
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /memorial-days [get]
func (h *MemorialHandler) List(c echo.Context) error {
	days, err := h.memorials.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    days,
	})
}

// Purchase godoc
// @Summary Purchase a memorial day; each hebrew date sells exactly once
// @Tags memorial-days
// @Accept json
// @Produce json
// @Param request body MemorialDayRequest true "Purchase"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /memorial-days [post]
func (h *MemorialHandler) Purchase(c echo.Context) error {
	var req MemorialDayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	gregorianDate, _ := time.Parse(dateLayout, req.GregorianDate)

	day, err := h.memorials.Purchase(c.Request().Context(), service.MemorialDayInput{
		HebrewDate:    req.HebrewDate,
		GregorianDate: gregorianDate,
		PurchasedBy:   req.PurchasedBy,
		DedicatedTo:   req.DedicatedTo,
		Message:       req.Message,
		PaymentID:     req.PaymentID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    day,
		"message": "יום הזיכרון נרכש בהצלחה",
	})
}
