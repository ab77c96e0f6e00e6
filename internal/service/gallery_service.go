package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"shul/internal/model"
	"shul/internal/repository"
)

// FileStore abstracts the backing storage for uploaded images.
type FileStore interface {
	Save(src io.Reader, originalName string) (url string, err error)
	Remove(url string) error
}

// ImageUpload carries one multipart upload plus its metadata.
type ImageUpload struct {
	File        io.Reader
	Filename    string
	Title       string
	Description string
	CategoryID  uint
}

// GalleryService manages image categories and their disk-backed images. File
// and row mutations are two-phase with compensating actions, so a failure in
// either step never leaves a row pointing at a missing file.
type GalleryService interface {
	ListCategories(ctx context.Context) ([]model.ImageCategory, error)
	CreateCategory(ctx context.Context, name string, description *string) (*model.ImageCategory, error)
	UpdateCategory(ctx context.Context, id uint, name string, description *string) (*model.ImageCategory, error)
	// DeleteCategory removes a category, its image rows and their files.
	DeleteCategory(ctx context.Context, id uint) error

	UploadImage(ctx context.Context, upload ImageUpload) (*model.Image, error)
	DeleteImage(ctx context.Context, id uint) error
	ReorderImages(ctx context.Context, items []repository.ReorderItem) error
}

type galleryService struct {
	images repository.ImageRepository
	files  FileStore
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(images repository.ImageRepository, files FileStore) GalleryService {
	return &galleryService{images: images, files: files}
}

func (s *galleryService) ListCategories(ctx context.Context) ([]model.ImageCategory, error) {
	return s.images.ListCategories(ctx)
}

func (s *galleryService) CreateCategory(ctx context.Context, name string, description *string) (*model.ImageCategory, error) {
	category := &model.ImageCategory{Name: name, Description: description}
	if err := s.images.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *galleryService) UpdateCategory(ctx context.Context, id uint, name string, description *string) (*model.ImageCategory, error) {
	category, err := s.images.FindCategoryByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = description
	if err := s.images.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes backing files first, then deletes image rows and the
// category row in one transaction. A file that fails to delete only logs: an
// orphaned file is recoverable, a row without a file is not.
func (s *galleryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.images.FindCategoryByID(ctx, id, true)
	if err != nil {
		return err
	}

	for _, image := range category.Images {
		if err := s.files.Remove(image.URL); err != nil {
			log.Printf("gallery: remove file for image %d: %v", image.ID, err)
		}
	}

	return s.images.DeleteCategoryCascade(ctx, id)
}

// UploadImage writes the file, then inserts the row; if the insert fails the
// file is removed again.
func (s *galleryService) UploadImage(ctx context.Context, upload ImageUpload) (*model.Image, error) {
	if _, err := s.images.FindCategoryByID(ctx, upload.CategoryID, false); err != nil {
		return nil, err
	}

	url, err := s.files.Save(upload.File, upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	image := &model.Image{
		Title:        upload.Title,
		Description:  upload.Description,
		URL:          url,
		CategoryID:   upload.CategoryID,
		DisplayOrder: 0, // new images go to the start of the list
	}
	if err := s.images.CreateImage(ctx, image); err != nil {
		if removeErr := s.files.Remove(url); removeErr != nil {
			log.Printf("gallery: compensating file removal failed for %s: %v", url, removeErr)
		}
		return nil, fmt.Errorf("record upload: %w", err)
	}

	return image, nil
}

// DeleteImage soft-marks the row, removes the file, then hard-deletes the row.
// A crash mid-sequence leaves a soft-deleted row, invisible to readers.
func (s *galleryService) DeleteImage(ctx context.Context, id uint) error {
	image, err := s.images.FindImageByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.SoftDeleteImage(ctx, id); err != nil {
		return err
	}
	if err := s.files.Remove(image.URL); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	if err := s.images.HardDeleteImage(ctx, id); err != nil {
		return fmt.Errorf("delete image row: %w", err)
	}
	return nil
}

func (s *galleryService) ReorderImages(ctx context.Context, items []repository.ReorderItem) error {
	return s.images.Reorder(ctx, items)
}
