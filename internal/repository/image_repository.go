package repository

import (
	"context"

	"gorm.io/gorm"

	"shul/internal/model"
)

// ReorderItem is one row of a batch display-order update.
type ReorderItem struct {
	ID           uint
	DisplayOrder int
}

// ImageRepository defines gallery persistence operations for categories and
// their images.
type ImageRepository interface {
	CreateCategory(ctx context.Context, category *model.ImageCategory) error
	UpdateCategory(ctx context.Context, category *model.ImageCategory) error
	FindCategoryByID(ctx context.Context, id uint, withImages bool) (*model.ImageCategory, error)
	ListCategories(ctx context.Context) ([]model.ImageCategory, error)
	// DeleteCategoryCascade removes a category and all its images in one
	// transaction. Backing files must already be gone by the time this runs.
	DeleteCategoryCascade(ctx context.Context, id uint) error

	CreateImage(ctx context.Context, image *model.Image) error
	FindImageByID(ctx context.Context, id uint) (*model.Image, error)
	// SoftDeleteImage marks the row deleted while its file is being removed.
	SoftDeleteImage(ctx context.Context, id uint) error
	// HardDeleteImage permanently removes a row, soft-deleted or not.
	HardDeleteImage(ctx context.Context, id uint) error
	// Reorder applies a batch of display-order updates all-or-nothing.
	Reorder(ctx context.Context, items []ReorderItem) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) CreateCategory(ctx context.Context, category *model.ImageCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *imageRepository) UpdateCategory(ctx context.Context, category *model.ImageCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *imageRepository) FindCategoryByID(ctx context.Context, id uint, withImages bool) (*model.ImageCategory, error) {
	var category model.ImageCategory
	q := r.db.WithContext(ctx)
	if withImages {
		q = q.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		})
	}
	if err := q.First(&category, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &category, nil
}

// ListCategories returns every category with its images ordered by display
// order, ties broken by insertion order.
func (r *imageRepository) ListCategories(ctx context.Context) ([]model.ImageCategory, error) {
	var categories []model.ImageCategory
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *imageRepository) DeleteCategoryCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("category_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ImageCategory{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateNotFound(err)
}

func (r *imageRepository) CreateImage(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) FindImageByID(ctx context.Context, id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &image, nil
}

func (r *imageRepository) SoftDeleteImage(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Image{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *imageRepository) HardDeleteImage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&model.Image{}, id).Error
}

func (r *imageRepository) Reorder(ctx context.Context, items []ReorderItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			// RowsAffected is not checked: MySQL reports zero for updates
			// that leave the value unchanged.
			err := tx.Model(&model.Image{}).
				Where("id = ?", item.ID).
				Update("display_order", item.DisplayOrder).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	return translateNotFound(err)
}
