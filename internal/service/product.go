package service

import (
	"context"
	"strings"
	"time"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
)

type ProductMapper interface {
	Register(ctx context.Context, p *dto.ProductDTO) (int64, error)
	GetProduct(ctx context.Context, id int64) (*dto.ProductDTO, error)
	SelectMyProducts(ctx context.Context, accountID string) ([]dto.ProductDTO, error)
	UpdateProducts(ctx context.Context, accountID string, productID int64, u dto.ProductUpdate, updateTime time.Time) (int64, error)
	DeleteProduct(ctx context.Context, accountID string, productID int64) (int64, error)
	IncreaseDibCount(ctx context.Context, productID int64) (int64, error)
	SelectProducts(ctx context.Context, search dto.CategoryDTO) ([]dto.ProductDTO, error)
}

type CategoryLookup interface {
	GetCategory(ctx context.Context, id int) (*dto.CategoryDTO, error)
}

type FileLookup interface {
	GetFile(ctx context.Context, id int64) (*dto.FileDTO, error)
}

type ProductService struct {
	products   ProductMapper
	users      *UserService
	categories CategoryLookup
	files      FileLookup
	now        func() time.Time
}

func NewProductService(products ProductMapper, users *UserService, categories CategoryLookup, files FileLookup) *ProductService {
	return &ProductService{
		products:   products,
		users:      users,
		categories: categories,
		files:      files,
		now:        time.Now,
	}
}

// Register lists a new product owned by accountID.
func (s *ProductService) Register(ctx context.Context, accountID string, p *dto.ProductDTO) error {
	user, err := s.users.GetUserInfo(ctx, accountID)
	if err != nil {
		return err
	}

	p.ID = 0
	p.AccountID = user.ID
	if p.Status == "" {
		p.Status = dto.ProductStatusAvailable
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, accountID, p.CategoryID, p.FileID); err != nil {
		return err
	}
	p.UpdateTime = s.now()

	_, err = s.products.Register(ctx, p)
	return err
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	p, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errs.ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) GetMyProducts(ctx context.Context, accountID string) ([]dto.ProductDTO, error) {
	user, err := s.users.GetUserInfo(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.products.SelectMyProducts(ctx, user.ID)
}

// UpdateProducts applies the supplied fields to a product owned by
// accountID. Only those columns are written, so concurrent dibs survive.
// Products of other accounts are reported as not found.
func (s *ProductService) UpdateProducts(ctx context.Context, accountID string, productID int64, u dto.ProductUpdate) error {
	user, err := s.users.GetUserInfo(ctx, accountID)
	if err != nil {
		return err
	}
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil || p.AccountID != user.ID {
		return errs.ErrProductNotFound
	}

	categoryChanged := u.CategoryID != nil && *u.CategoryID != p.CategoryID
	fileChanged := u.FileID != nil && (p.FileID == nil || *u.FileID != *p.FileID)
	u.ApplyTo(p)

	if err := validateProduct(p); err != nil {
		return err
	}
	var (
		categoryID = 0
		fileID     *int64
	)
	if categoryChanged {
		categoryID = p.CategoryID
	}
	if fileChanged {
		fileID = p.FileID
	}
	if err := s.checkReferences(ctx, user.ID, categoryID, fileID); err != nil {
		return err
	}
	if u.Title != nil {
		u.Title = &p.Title
	}

	n, err := s.products.UpdateProducts(ctx, user.ID, productID, u, s.now())
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, accountID string, productID int64) error {
	user, err := s.users.GetUserInfo(ctx, accountID)
	if err != nil {
		return err
	}
	n, err := s.products.DeleteProduct(ctx, user.ID, productID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// AddDib records one more buyer's interest in a product.
func (s *ProductService) AddDib(ctx context.Context, productID int64) error {
	n, err := s.products.IncreaseDibCount(ctx, productID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// SearchProducts lists products of search.ID (every category when zero)
// ordered by search.SortStatus.
func (s *ProductService) SearchProducts(ctx context.Context, search dto.CategoryDTO) ([]dto.ProductDTO, error) {
	search.Normalize()
	if !search.SortStatus.Valid() {
		return nil, errs.BadRequest("unknown sort status " + string(search.SortStatus))
	}
	if search.ID < 0 {
		return nil, errs.BadRequest("categoryId must not be negative")
	}
	if search.ID > 0 {
		if err := s.checkReferences(ctx, "", search.ID, nil); err != nil {
			return nil, err
		}
	}
	return s.products.SelectProducts(ctx, search)
}

// checkReferences verifies a non-zero category id and a non-nil file id.
// Files must belong to accountID.
func (s *ProductService) checkReferences(ctx context.Context, accountID string, categoryID int, fileID *int64) error {
	if categoryID != 0 {
		c, err := s.categories.GetCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return errs.ErrCategoryNotFound
		}
	}
	if fileID != nil {
		f, err := s.files.GetFile(ctx, *fileID)
		if err != nil {
			return err
		}
		if f == nil || f.AccountID != accountID {
			return errs.ErrFileNotFound
		}
	}
	return nil
}

func validateProduct(p *dto.ProductDTO) error {
	p.Title = strings.TrimSpace(p.Title)
	switch {
	case p.Title == "":
		return errs.BadRequest("title is required")
	case p.Price < 0 || p.DeliveryPrice < 0:
		return errs.BadRequest("price must not be negative")
	case p.DibCount < 0:
		return errs.BadRequest("dibCount must not be negative")
	case !p.Status.Valid():
		return errs.BadRequest("unknown product status " + string(p.Status))
	case p.CategoryID <= 0:
		return errs.BadRequest("categoryId is required")
	}
	return nil
}
