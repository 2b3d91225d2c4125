package gorm

import (
	"errors"

	"gorm.io/gorm"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/model"
	"pixelbin/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// Create persists a new user. A duplicate username surfaces as a conflict,
// whichever of two racing registrations loses at the database.
func (s *UsersStore) Create(username string, passwordHash []byte) (*model.User, error) {
	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return nil, apperror.NewConflict("Username already exists!", err)
		}
		return nil, apperror.NewInternal("failed to create user", err)
	}
	return user, nil
}

// ByUsername retrieves a user by username
func (s *UsersStore) ByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("user not found", err)
		}
		return nil, apperror.NewInternal("failed to look up user", err)
	}
	return &user, nil
}

// ByID retrieves a user by primary key
func (s *UsersStore) ByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("user not found", err)
		}
		return nil, apperror.NewInternal("failed to look up user", err)
	}
	return &user, nil
}
