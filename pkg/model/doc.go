// Package model defines the database models for Pixelbin.
//
// This package contains GORM models that map to the Pixelbin PostgreSQL
// schema created by the migrations in db/migrations.
//
// # Core Models
//
//   - User: a registered account with a unique username and a bcrypt
//     password hash
//   - Image: an uploaded image's metadata; the file bytes themselves live
//     on the filesystem under the configured upload directory
//
// Both models are insert-only: records are never mutated after creation and
// deletion is not exposed through the application.
package model
