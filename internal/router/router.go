package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shul/internal/auth"
	"shul/internal/config"
	apperrors "shul/internal/errors"
	"shul/internal/handler"
	"shul/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	announcementHandler *handler.AnnouncementHandler,
	prayerTimeHandler *handler.PrayerTimeHandler,
	galleryHandler *handler.GalleryHandler,
	memorialHandler *handler.MemorialHandler,
	contactHandler *handler.ContactHandler,
	eventHandler *handler.EventHandler,
	paymentHandler *handler.PaymentHandler,
	calendarHandler *handler.CalendarHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = errorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded gallery files are served straight off disk.
	e.Static("/uploads", cfg.UploadDir)

	// Login lives outside /api, matching the original route layout.
	e.POST("/auth/login", authHandler.Login)

	api := e.Group("/api")

	// Public routes
	api.GET("/announcements", announcementHandler.ListActive)
	api.GET("/prayer-times", prayerTimeHandler.List)
	api.GET("/images/categories", galleryHandler.ListCategories)
	api.GET("/memorial-days", memorialHandler.List)
	api.POST("/memorial-days", memorialHandler.Purchase)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/events", eventHandler.List)
	api.POST("/payments/create-payment", paymentHandler.CreatePayment)
	api.GET("/payments/transactions", paymentHandler.Transactions)
	api.GET("/payments/obligations", paymentHandler.Obligations)
	api.GET("/zmanim", calendarHandler.Zmanim)
	api.GET("/hebrew-calendar", calendarHandler.HebrewCalendar)

	// Admin routes: valid bearer token plus an admin row in the store.
	admin := api.Group("/admin",
		echojwt.WithConfig(auth.JWTConfig(jwtService)),
		auth.AdminOnly(users),
	)

	admin.GET("/announcements", announcementHandler.ListAll)
	admin.POST("/announcements", announcementHandler.Create)
	admin.PUT("/announcements/:id", announcementHandler.Update)
	admin.DELETE("/announcements/:id", announcementHandler.Delete)

	admin.POST("/prayer-times", prayerTimeHandler.Create)
	admin.PUT("/prayer-times/:id", prayerTimeHandler.Update)
	admin.DELETE("/prayer-times/:id", prayerTimeHandler.Delete)

	admin.POST("/categories", galleryHandler.CreateCategory)
	admin.PUT("/categories/:id", galleryHandler.UpdateCategory)
	admin.DELETE("/categories/:id", galleryHandler.DeleteCategory)
	admin.POST("/images/upload", galleryHandler.UploadImage)
	admin.PUT("/images/reorder", galleryHandler.ReorderImages)
	admin.DELETE("/images/:id", galleryHandler.DeleteImage)

	admin.POST("/events", eventHandler.Create)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.DELETE("/events/:id", eventHandler.Delete)
}

// CustomValidator wraps validator for Echo and rewrites tag failures into the
// localized validation error, reporting every violated field at once.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return apperrors.NewValidationError(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("השדה %s הוא שדה חובה", fe.Field())
	case "email":
		return fmt.Sprintf("השדה %s אינו כתובת אימייל תקינה", fe.Field())
	case "max":
		return fmt.Sprintf("השדה %s ארוך מדי (עד %s תווים)", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("השדה %s קטן מהערך המינימלי %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("השדה %s אינו תאריך תקין (פורמט %s)", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("השדה %s חייב להיות אחד מ: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("השדה %s אינו תקין", fe.Field())
	}
}

// errorHandler renders every error as the localized envelope. Handlers
// already attach response bodies; this covers unmatched routes and panics.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var echoErr *echo.HTTPError
	status := http.StatusInternalServerError
	var body interface{} = apperrors.ErrorResponse{
		Error: "אירעה שגיאה, אנא נסה שוב מאוחר יותר",
		Code:  "INTERNAL_ERROR",
	}

	switch {
	case errors.As(err, &echoErr):
		status = echoErr.Code
		if resp, ok := echoErr.Message.(apperrors.ErrorResponse); ok {
			body = resp
		} else if status == http.StatusNotFound {
			body = apperrors.ErrorResponse{Error: "הנתיב המבוקש לא נמצא", Code: "ROUTE_NOT_FOUND"}
		} else if msg, ok := echoErr.Message.(string); ok {
			body = apperrors.ErrorResponse{Error: msg}
		}
	default:
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		body = httpErr.ToErrorResponse()
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
