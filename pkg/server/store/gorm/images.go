package gorm

import (
	"errors"

	"gorm.io/gorm"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/model"
	"pixelbin/pkg/server/store"
)

// Ensure ImagesStore implements store.ImagesStore
var _ store.ImagesStore = (*ImagesStore)(nil)

// ImagesStore implements store.ImagesStore using GORM
type ImagesStore struct {
	db *gorm.DB
}

// NewImagesStore creates a new ImagesStore
func NewImagesStore(db *gorm.DB) *ImagesStore {
	return &ImagesStore{db: db}
}

// Create persists a new image record. A duplicate slug surfaces as a
// conflict; the database index is what decides a race between two uploads
// that pre-checked the same slug.
func (s *ImagesStore) Create(image *model.Image) error {
	if err := s.db.Create(image).Error; err != nil {
		if isUniqueViolation(err, "images_slug_key") {
			return apperror.NewConflict("Custom link already in use. Please choose another.", err)
		}
		return apperror.NewInternal("failed to create image record", err)
	}
	return nil
}

// ByID retrieves an image by primary key
func (s *ImagesStore) ByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Image not found", err)
		}
		return nil, apperror.NewInternal("failed to look up image", err)
	}
	return &image, nil
}

// BySlug retrieves an image by its custom slug
func (s *ImagesStore) BySlug(slug string) (*model.Image, error) {
	var image model.Image
	if err := s.db.Where("slug = ?", slug).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Image not found", err)
		}
		return nil, apperror.NewInternal("failed to look up image", err)
	}
	return &image, nil
}

// SlugTaken reports whether any image already uses the slug
func (s *ImagesStore) SlugTaken(slug string) (bool, error) {
	var taken bool
	if err := s.db.Raw(`SELECT EXISTS(SELECT 1 FROM images WHERE slug = ?)`, slug).Scan(&taken).Error; err != nil {
		return false, apperror.NewInternal("failed to check slug", err)
	}
	return taken, nil
}

// Newest returns up to limit images, most recently uploaded first
func (s *ImagesStore) Newest(limit int) ([]model.Image, error) {
	var images []model.Image
	query := s.db.Order("uploaded_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&images).Error; err != nil {
		return nil, apperror.NewInternal("failed to list images", err)
	}
	return images, nil
}
