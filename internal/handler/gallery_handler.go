package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shul/internal/errors"
	"shul/internal/repository"
	"shul/internal/service"
)

// maxUploadSize bounds a single image upload to 5MB.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// GalleryHandler handles image category and image endpoints.
type GalleryHandler struct {
	gallery service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(gallery service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// CategoryRequest represents a category create/update request.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ReorderRequest represents a batch display-order update.
type ReorderRequest struct {
	Images []ReorderItemRequest `json:"images" validate:"required,min=1,dive"`
}

// ReorderItemRequest is one row of a reorder batch.
type ReorderItemRequest struct {
	ID           uint `json:"id" validate:"required"`
	DisplayOrder int  `json:"displayOrder" validate:"gte=0"`
}

// ListCategories godoc
// @Summary List image categories with their images, display order ascending
// @Tags gallery
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /images/categories [get]
func (h *GalleryHandler) ListCategories(c echo.Context) error {
	categories, err := h.gallery.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    categories,
	})
}

// CreateCategory godoc
// @Summary Create an image category
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} map[string]interface{}
// @Router /admin/categories [post]
func (h *GalleryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.gallery.CreateCategory(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    category,
		"message": "הקטגוריה נוצרה בהצלחה",
	})
}

// UpdateCategory godoc
// @Summary Update an image category
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *GalleryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.gallery.UpdateCategory(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    category,
		"message": "הקטגוריה עודכנה בהצלחה",
	})
}

// DeleteCategory godoc
// @Summary Delete a category, its images and their files
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *GalleryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.gallery.DeleteCategory(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "הקטגוריה נמחקה בהצלחה",
	})
}

// UploadImage godoc
// @Summary Upload a gallery image
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (jpeg/png/webp, up to 5MB)"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param categoryId formData int true "Category ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/images/upload [post]
func (h *GalleryHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return httpError(apperrors.NewValidationError("לא נבחר קובץ להעלאה"))
	}
	if fileHeader.Size > maxUploadSize {
		return httpError(apperrors.NewValidationError("גודל הקובץ חורג מ-5MB"))
	}
	if !allowedImageTypes[fileHeader.Header.Get("Content-Type")] {
		return httpError(apperrors.NewValidationError("סוג הקובץ אינו נתמך (jpeg/png/webp בלבד)"))
	}

	title := c.FormValue("title")
	if title == "" {
		return httpError(apperrors.NewValidationError("כותרת היא שדה חובה"))
	}
	categoryID, err := formUint(c, "categoryId")
	if err != nil {
		return httpError(apperrors.NewValidationError("מזהה קטגוריה לא תקין"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return httpError(apperrors.NewValidationError("לא ניתן לקרוא את הקובץ"))
	}
	defer file.Close()

	image, err := h.gallery.UploadImage(c.Request().Context(), service.ImageUpload{
		File:        file,
		Filename:    fileHeader.Filename,
		Title:       title,
		Description: c.FormValue("description"),
		CategoryID:  categoryID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    image,
	})
}

// ReorderImages godoc
// @Summary Apply a batch of display-order updates in one transaction
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderRequest true "New ordering"
// @Success 200 {object} map[string]interface{}
// @Router /admin/images/reorder [put]
func (h *GalleryHandler) ReorderImages(c echo.Context) error {
	var req ReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]repository.ReorderItem, 0, len(req.Images))
	for _, img := range req.Images {
		items = append(items, repository.ReorderItem{ID: img.ID, DisplayOrder: img.DisplayOrder})
	}

	if err := h.gallery.ReorderImages(c.Request().Context(), items); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteImage godoc
// @Summary Delete an image and its backing file
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/images/{id} [delete]
func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.gallery.DeleteImage(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "התמונה נמחקה בהצלחה",
	})
}
