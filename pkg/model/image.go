package model

import "time"

// Image represents an uploaded image's metadata. Filename and Thumbnail are
// server-generated names under the upload directory, never the client's
// original filename.
//
// Slug is a pointer so an absent slug is stored as NULL: the unique index on
// the column is sparse and only applies to present values.
type Image struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Filename   string    `gorm:"column:filename;not null"`
	Thumbnail  string    `gorm:"column:thumbnail;not null"`
	Slug       *string   `gorm:"column:slug"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime"`
	UserID     uint      `gorm:"column:user_id;not null"`
}

func (Image) TableName() string {
	return "images"
}

// HasSlug reports whether the image has a custom slug.
func (i Image) HasSlug() bool {
	return i.Slug != nil && *i.Slug != ""
}
