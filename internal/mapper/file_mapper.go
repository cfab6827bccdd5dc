package mapper

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/models"
)

const getFileSQL = "SELECT id, account_id, path, original_name, created_at FROM files WHERE id = ?"

type FileMapper struct {
	db *gorm.DB
}

func NewFileMapper(db *gorm.DB) *FileMapper {
	return &FileMapper{db: db}
}

// Register stores the file row and fills f.ID and f.CreatedAt.
func (m *FileMapper) Register(ctx context.Context, f *dto.FileDTO) error {
	row := models.File{AccountID: f.AccountID, Path: f.Path, OriginalName: f.OriginalName}
	if err := m.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errors.Wrapf(err, "register file %s", f.Path)
	}
	f.ID = row.ID
	f.CreatedAt = row.CreatedAt
	return nil
}

func (m *FileMapper) GetFile(ctx context.Context, id int64) (*dto.FileDTO, error) {
	var f dto.FileDTO
	res := m.db.WithContext(ctx).Raw(getFileSQL, id).Scan(&f)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "get file %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &f, nil
}
