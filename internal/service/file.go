package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
)

// PublicPrefix is the URL prefix the upload directory is served under.
const PublicPrefix = "/uploads"

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

type FileMapper interface {
	FileLookup
	Register(ctx context.Context, f *dto.FileDTO) error
}

type FileService struct {
	mapper FileMapper
	dir    string
	now    func() time.Time
}

func NewFileService(mapper FileMapper, dir string) *FileService {
	return &FileService{mapper: mapper, dir: dir, now: time.Now}
}

// Upload stores an image under the upload directory and records it as a
// file of accountID.
func (s *FileService) Upload(ctx context.Context, accountID string, header *multipart.FileHeader) (*dto.FileDTO, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return nil, errs.BadRequest("unsupported image format")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}

	name := fmt.Sprintf("%d%s", s.now().UnixNano(), ext)
	if err := saveFile(header, filepath.Join(s.dir, name)); err != nil {
		return nil, err
	}

	f := &dto.FileDTO{
		AccountID:    accountID,
		Path:         PublicPrefix + "/" + name,
		OriginalName: filepath.Base(header.Filename),
	}
	if err := s.mapper.Register(ctx, f); err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return nil, err
	}
	return f, nil
}

func saveFile(header *multipart.FileHeader, dst string) error {
	src, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer src.Close()

	return writeFile(dst, src)
}

// writeFile copies src to dst. On any failure dst is removed.
func writeFile(dst string, src io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create upload file")
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return errors.Wrap(err, "write upload file")
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return errors.Wrap(err, "close upload file")
	}
	return nil
}
