package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "shul/internal/errors"
	"shul/internal/kesher"
)

// PaymentHandler bridges donation endpoints to the Kesher gateway.
type PaymentHandler struct {
	gateway *kesher.Client
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(gateway *kesher.Client) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// RecurringConfigRequest carries standing-order parameters.
type RecurringConfigRequest struct {
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	ChargeDay   int    `json:"chargeDay" validate:"required,min=1,max=28"`
	NumPayments int    `json:"numPayments" validate:"omitempty,min=1"`
}

// CreatePaymentRequest represents a hosted-payment-page request. Amounts are
// in shekels; conversion to agorot happens at the gateway boundary.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal         `json:"amount" validate:"required"`
	Name        string                  `json:"name" validate:"required,max=255"`
	Email       string                  `json:"email" validate:"omitempty,email"`
	Phone       string                  `json:"phone" validate:"omitempty,max=30"`
	Dedication  string                  `json:"dedication" validate:"omitempty,max=500"`
	PaymentType string                  `json:"paymentType" validate:"required,oneof=single recurring"`
	Recurring   *RecurringConfigRequest `json:"recurringConfig" validate:"omitempty"`
}

// DateRangeQuery bounds gateway read queries; both ends are required.
type DateRangeQuery struct {
	FromDate string `query:"fromDate"`
	ToDate   string `query:"toDate"`
}

// CreatePayment godoc
// @Summary Create a hosted payment page for a one-off or recurring donation
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Donation"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/create-payment [post]
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return httpError(apperrors.NewValidationError("סכום התרומה חייב להיות גדול מאפס"))
	}
	if req.PaymentType == string(kesher.PaymentTypeRecurring) && req.Recurring == nil {
		return httpError(apperrors.NewValidationError("הוראת קבע מחייבת הגדרות חיוב חוזר"))
	}

	var recurring *kesher.RecurringConfig
	if req.Recurring != nil {
		recurring = &kesher.RecurringConfig{
			StartDate:   req.Recurring.StartDate,
			EndDate:     req.Recurring.EndDate,
			ChargeDay:   req.Recurring.ChargeDay,
			NumPayments: req.Recurring.NumPayments,
		}
	}

	url, err := h.gateway.CreatePaymentPage(c.Request().Context(), kesher.PaymentPageRequest{
		Amount:      req.Amount,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Dedication:  req.Dedication,
		PaymentType: kesher.PaymentType(req.PaymentType),
		Recurring:   recurring,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"paymentUrl": url},
	})
}

// Transactions godoc
// @Summary Relay a gateway transaction query for a date range
// @Tags payments
// @Produce json
// @Param fromDate query string true "YYYY-MM-DD"
// @Param toDate query string true "YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/transactions [get]
func (h *PaymentHandler) Transactions(c echo.Context) error {
	var q DateRangeQuery
	if err := c.Bind(&q); err != nil {
		return httpError(apperrors.ErrMissingDateRange)
	}

	data, err := h.gateway.GetTransactions(c.Request().Context(), q.FromDate, q.ToDate)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    data,
	})
}

// Obligations godoc
// @Summary Relay a gateway standing-order query for a date range
// @Tags payments
// @Produce json
// @Param fromDate query string true "YYYY-MM-DD"
// @Param toDate query string true "YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/obligations [get]
func (h *PaymentHandler) Obligations(c echo.Context) error {
	var q DateRangeQuery
	if err := c.Bind(&q); err != nil {
		return httpError(apperrors.ErrMissingDateRange)
	}

	data, err := h.gateway.GetObligations(c.Request().Context(), q.FromDate, q.ToDate)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    data,
	})
}
