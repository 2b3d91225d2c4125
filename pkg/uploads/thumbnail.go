package uploads

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// ThumbnailSize is the bounding box for generated thumbnails, in pixels.
const ThumbnailSize = 128

// ThumbnailPrefix prefixes a stored original's name to form its thumbnail's
// stored name.
const ThumbnailPrefix = "thumb-"

// ThumbnailName returns the stored thumbnail name for a stored original name.
func ThumbnailName(storedName string) string {
	return ThumbnailPrefix + storedName
}

// CreateThumbnail decodes the stored original and writes a derivative scaled
// down to fit ThumbnailSize, preserving aspect ratio. The output format
// follows the file extension.
func (s *FileStore) CreateThumbnail(srcName, dstName string) error {
	srcPath, err := s.Path(srcName)
	if err != nil {
		return err
	}
	dstPath, err := s.Path(dstName)
	if err != nil {
		return err
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", srcName, err)
	}

	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
	if err := imaging.Save(thumb, dstPath); err != nil {
		return fmt.Errorf("failed to save thumbnail %s: %w", dstName, err)
	}
	return nil
}
