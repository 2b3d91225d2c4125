package uploads

import (
	"io"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/model"
	"pixelbin/pkg/server/store"
)

// Pipeline orchestrates a single upload: validate, store the original,
// derive the thumbnail, persist the metadata record.
type Pipeline struct {
	files  *FileStore
	images store.ImagesStore
}

// NewPipeline creates an upload pipeline over the given file and metadata
// stores.
func NewPipeline(files *FileStore, images store.ImagesStore) *Pipeline {
	return &Pipeline{files: files, images: images}
}

// Files returns the underlying file store.
func (p *Pipeline) Files() *FileStore {
	return p.files
}

// Process runs the pipeline for one authenticated upload and returns the
// persisted image record. On any failure no record is persisted and any files
// already written are removed.
//
// The slug is checked before any file is written, and again by the database
// unique index at persist time: the pre-check gives a friendly early error,
// the index settles races.
func (p *Pipeline) Process(ownerID uint, src io.Reader, originalName, slug string) (*model.Image, error) {
	if src == nil || originalName == "" {
		return nil, apperror.NewValidation("No selected file", nil)
	}
	if !AllowedExtension(originalName) {
		return nil, apperror.NewValidation("File type not allowed", nil)
	}

	if slug != "" {
		taken, err := p.images.SlugTaken(slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.NewConflict("Custom link already in use. Please choose another.", nil)
		}
	}

	storedName := GenerateName(originalName)
	if err := p.files.Save(storedName, src); err != nil {
		return nil, apperror.NewInternal("failed to store file", err)
	}

	thumbName := ThumbnailName(storedName)
	if err := p.files.CreateThumbnail(storedName, thumbName); err != nil {
		// The original must not be left behind when the upload fails.
		_ = p.files.Remove(storedName)
		return nil, apperror.NewValidation("Could not process image", err)
	}

	image := &model.Image{
		Filename:  storedName,
		Thumbnail: thumbName,
		UserID:    ownerID,
	}
	if slug != "" {
		image.Slug = &slug
	}

	if err := p.images.Create(image); err != nil {
		_ = p.files.Remove(thumbName)
		_ = p.files.Remove(storedName)
		return nil, err
	}

	return image, nil
}
