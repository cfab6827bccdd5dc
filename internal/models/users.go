package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the users table; ID is the account id chosen at registration.
type User struct {
	ID        string `gorm:"primaryKey;size:64"`
	Password  string `gorm:"size:72;not null"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:255"`
	UserType  string `gorm:"size:16;not null;default:'USER'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HashPassword turns a plain password into a bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether pw matches hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
