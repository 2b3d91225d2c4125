// Package gorm provides GORM-backed implementations of the store interfaces.
//
// Unique-constraint violations from PostgreSQL are translated into apperror
// conflicts here, so handlers never inspect driver errors.
package gorm
