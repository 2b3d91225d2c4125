package store

import "pixelbin/pkg/model"

// ImagesStore abstracts image metadata storage. Slug uniqueness is sparse:
// records without a slug never conflict, and the database index is the final
// arbiter when two uploads race on the same slug.
type ImagesStore interface {
	// Create persists a new image record, filling in its ID
	Create(image *model.Image) error

	// ByID retrieves an image by primary key
	ByID(id uint) (*model.Image, error)

	// BySlug retrieves an image by its custom slug
	BySlug(slug string) (*model.Image, error)

	// SlugTaken reports whether any image already uses the slug
	SlugTaken(slug string) (bool, error)

	// Newest returns up to limit images, most recently uploaded first
	Newest(limit int) ([]model.Image, error)
}
