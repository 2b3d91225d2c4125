package store

import "pixelbin/pkg/model"

// UsersStore abstracts credential storage. Username uniqueness is enforced by
// the database; Create surfaces a violation as a conflict error.
type UsersStore interface {
	// Create persists a new user. The password must already be hashed.
	Create(username string, passwordHash []byte) (*model.User, error)

	// ByUsername retrieves a user by username
	ByUsername(username string) (*model.User, error)

	// ByID retrieves a user by primary key
	ByID(id uint) (*model.User, error)
}
