package model

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash; the plaintext never touches the database.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;not null"`
	PasswordHash []byte    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
