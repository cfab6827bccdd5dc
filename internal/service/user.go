package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
	"secondhand-market/internal/models"
)

type UserMapper interface {
	GetUserProfile(ctx context.Context, id string) (*dto.UserDTO, error)
	InsertUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error)
	UpdateUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error)
	DeleteUserProfile(ctx context.Context, id string) (int64, error)
}

type UserService struct {
	mapper UserMapper
}

func NewUserService(mapper UserMapper) *UserService {
	return &UserService{mapper: mapper}
}

// GetUserInfo returns errs.ErrUserNotFound instead of a nil user.
func (s *UserService) GetUserInfo(ctx context.Context, id string) (*dto.UserDTO, error) {
	user, err := s.mapper.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

// InsertUserProfile registers a new account and returns the insert count.
// The plain password in user.Password is replaced by its hash.
func (s *UserService) InsertUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.Password = hash
	if user.UserType == "" {
		user.UserType = dto.UserTypeUser
	}

	n, err := s.mapper.InsertUserProfile(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, errs.ErrConflict.WithMessage("account id is already registered")
	}
	return n, err
}

// UpdateUserProfile rewrites password, name, phone and address and returns
// the update count; an unknown id yields 0.
func (s *UserService) UpdateUserProfile(ctx context.Context, user *dto.UserDTO) (int64, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.Password = hash
	return s.mapper.UpdateUserProfile(ctx, user)
}

// MaxPasswordBytes is the longest password bcrypt accepts, in bytes.
const MaxPasswordBytes = 72

func hashPassword(pw string) (string, error) {
	if len(pw) > MaxPasswordBytes {
		return "", errs.BadRequest("pw must be at most 72 bytes")
	}
	hash, err := models.HashPassword(pw)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return hash, nil
}

// DeleteUserProfile succeeds whether or not the account existed.
func (s *UserService) DeleteUserProfile(ctx context.Context, id string) error {
	_, err := s.mapper.DeleteUserProfile(ctx, id)
	return err
}

// Login checks the credentials of an account. Unknown ids and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, id, password string) (*dto.UserDTO, error) {
	user, err := s.mapper.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !models.CheckPassword(user.Password, password) {
		return nil, errs.ErrInvalidCredentials
	}
	return user, nil
}
