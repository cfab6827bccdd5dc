package mapper

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/models"
)

const (
	selectCategoriesSQL = "SELECT id, name FROM categories ORDER BY id"

	getCategorySQL = "SELECT id, name FROM categories WHERE id = ?"
)

type CategoryMapper struct {
	db *gorm.DB
}

func NewCategoryMapper(db *gorm.DB) *CategoryMapper {
	return &CategoryMapper{db: db}
}

func (m *CategoryMapper) SelectCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories := []dto.CategoryDTO{}
	if err := m.db.WithContext(ctx).Raw(selectCategoriesSQL).Scan(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "select categories")
	}
	return categories, nil
}

func (m *CategoryMapper) GetCategory(ctx context.Context, id int) (*dto.CategoryDTO, error) {
	var c dto.CategoryDTO
	res := m.db.WithContext(ctx).Raw(getCategorySQL, id).Scan(&c)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "get category %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &c, nil
}

// Register inserts through the model so the generated id comes back on
// both PostgreSQL (RETURNING) and MySQL (LAST_INSERT_ID).
func (m *CategoryMapper) Register(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	row := models.Category{Name: name}
	if err := m.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, errors.Wrapf(err, "register category %s", name)
	}
	return &dto.CategoryDTO{ID: row.ID, Name: row.Name}, nil
}
