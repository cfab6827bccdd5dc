// Package mapper binds each data operation to one parameterized SQL
// statement executed through gorm. Placeholders are written as "?" and
// rewritten by the active dialector ($n on PostgreSQL).
//
// Lookups return (nil, nil) when no row matches; deciding whether that is
// an error belongs to the service layer.
package mapper

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
)

const (
	getUserProfileSQL = "SELECT id, password, name, phone, address, user_type FROM users WHERE id = ?"

	insertUserProfileSQL = "INSERT INTO users (id, password, name, phone, address, user_type, created_at, updated_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	updateUserProfileSQL = "UPDATE users SET password = ?, name = ?, phone = ?, address = ?, updated_at = ? WHERE id = ?"

	deleteUserProfileSQL = "DELETE FROM users WHERE id = ?"
)

type UserProfileMapper struct {
	db *gorm.DB
}

func NewUserProfileMapper(db *gorm.DB) *UserProfileMapper {
	return &UserProfileMapper{db: db}
}

func (m *UserProfileMapper) GetUserProfile(ctx context.Context, id string) (*dto.UserDTO, error) {
	var user dto.UserDTO
	res := m.db.WithContext(ctx).Raw(getUserProfileSQL, id).Scan(&user)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "get user profile %s", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// InsertUserProfile expects user.Password to be hashed already.
func (m *UserProfileMapper) InsertUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error) {
	now := time.Now()
	res := m.db.WithContext(ctx).Exec(insertUserProfileSQL,
		user.ID, user.Password, user.Name, user.Phone, user.Address, string(user.UserType), now, now)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "insert user profile %s", user.ID)
	}
	return res.RowsAffected, nil
}

// UpdateUserProfile expects user.Password to be hashed already.
func (m *UserProfileMapper) UpdateUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error) {
	res := m.db.WithContext(ctx).Exec(updateUserProfileSQL,
		user.Password, user.Name, user.Phone, user.Address, time.Now(), user.ID)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "update user profile %s", user.ID)
	}
	return res.RowsAffected, nil
}

func (m *UserProfileMapper) DeleteUserProfile(ctx context.Context, id string) (int64, error) {
	res := m.db.WithContext(ctx).Exec(deleteUserProfileSQL, id)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "delete user profile %s", id)
	}
	return res.RowsAffected, nil
}
