// Package store defines storage abstractions for the Pixelbin server.
//
// The interfaces in this package decouple the endpoint handlers from GORM.
// The gorm subpackage provides the PostgreSQL-backed implementations; tests
// substitute sqlmock-backed ones.
package store
