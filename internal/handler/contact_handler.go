package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shul/internal/service"
)

// ContactHandler handles the public contact form endpoint.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// Submit godoc
// @Summary Record a contact message and notify the synagogue inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.contacts.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    contact,
		"message": "ההודעה נשלחה בהצלחה",
	})
}
