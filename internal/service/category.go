package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
)

type CategoryMapper interface {
	CategoryLookup
	SelectCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	Register(ctx context.Context, name string) (*dto.CategoryDTO, error)
}

type CategoryService struct {
	mapper CategoryMapper
}

func NewCategoryService(mapper CategoryMapper) *CategoryService {
	return &CategoryService{mapper: mapper}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return s.mapper.SelectCategories(ctx)
}

func (s *CategoryService) Register(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.BadRequest("name is required")
	}

	c, err := s.mapper.Register(ctx, name)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errs.ErrConflict.WithMessage("category already exists")
	}
	return c, err
}
