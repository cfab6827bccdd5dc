package mapper

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
)

const productColumns = "id, account_id, title, contents, price, delivery_price, status, is_trade, dib_count, category_id, file_id, update_time"

const (
	insertProductSQL = "INSERT INTO products (account_id, title, contents, price, delivery_price, status, is_trade, " +
		"dib_count, category_id, file_id, update_time, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

	getProductSQL = "SELECT " + productColumns + " FROM products WHERE id = ?"

	selectMyProductsSQL = "SELECT " + productColumns + " FROM products WHERE account_id = ? ORDER BY id DESC"

	deleteProductSQL = "DELETE FROM products WHERE id = ? AND account_id = ?"

	increaseDibCountSQL = "UPDATE products SET dib_count = dib_count + 1 WHERE id = ?"
)

// sortClauses is the only source of ORDER BY text; request values never
// reach the SQL string.
var sortClauses = map[dto.SortStatus]string{
	dto.SortCategories: "category_id ASC, id ASC",
	dto.SortNewest:     "update_time DESC, id DESC",
	dto.SortOldest:     "update_time ASC, id ASC",
	dto.SortHighPrice:  "price DESC, id DESC",
	dto.SortLowPrice:   "price ASC, id ASC",
	dto.SortGrade:      "dib_count DESC, id DESC",
}

type ProductMapper struct {
	db *gorm.DB
}

func NewProductMapper(db *gorm.DB) *ProductMapper {
	return &ProductMapper{db: db}
}

func (m *ProductMapper) Register(ctx context.Context, p *dto.ProductDTO) (int64, error) {
	res := m.db.WithContext(ctx).Exec(insertProductSQL,
		p.AccountID, p.Title, p.Contents, p.Price, p.DeliveryPrice, string(p.Status), p.IsTrade,
		p.DibCount, p.CategoryID, p.FileID, p.UpdateTime, p.UpdateTime)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "register product for %s", p.AccountID)
	}
	return res.RowsAffected, nil
}

func (m *ProductMapper) GetProduct(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	var p dto.ProductDTO
	res := m.db.WithContext(ctx).Raw(getProductSQL, id).Scan(&p)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "get product %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &p, nil
}

func (m *ProductMapper) SelectMyProducts(ctx context.Context, accountID string) ([]dto.ProductDTO, error) {
	products := []dto.ProductDTO{}
	if err := m.db.WithContext(ctx).Raw(selectMyProductsSQL, accountID).Scan(&products).Error; err != nil {
		return nil, errors.Wrapf(err, "select products of %s", accountID)
	}
	return products, nil
}

// UpdateProducts writes only the columns set in u, plus update_time, on a
// product owned by accountID. Column names come from this function alone.
func (m *ProductMapper) UpdateProducts(ctx context.Context, accountID string, productID int64, u dto.ProductUpdate, updateTime time.Time) (int64, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}
	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Contents != nil {
		set("contents", *u.Contents)
	}
	if u.Price != nil {
		set("price", *u.Price)
	}
	if u.DeliveryPrice != nil {
		set("delivery_price", *u.DeliveryPrice)
	}
	if u.Status != nil {
		set("status", string(*u.Status))
	}
	if u.IsTrade != nil {
		set("is_trade", *u.IsTrade)
	}
	if u.DibCount != nil {
		set("dib_count", *u.DibCount)
	}
	if u.CategoryID != nil {
		set("category_id", *u.CategoryID)
	}
	if u.FileID != nil {
		set("file_id", *u.FileID)
	}
	set("update_time", updateTime)
	args = append(args, productID, accountID)

	q := "UPDATE products SET " + strings.Join(sets, ", ") + " WHERE id = ? AND account_id = ?"
	res := m.db.WithContext(ctx).Exec(q, args...)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "update product %d", productID)
	}
	return res.RowsAffected, nil
}

func (m *ProductMapper) DeleteProduct(ctx context.Context, accountID string, productID int64) (int64, error) {
	res := m.db.WithContext(ctx).Exec(deleteProductSQL, productID, accountID)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "delete product %d", productID)
	}
	return res.RowsAffected, nil
}

func (m *ProductMapper) IncreaseDibCount(ctx context.Context, productID int64) (int64, error) {
	res := m.db.WithContext(ctx).Exec(increaseDibCountSQL, productID)
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "increase dib count %d", productID)
	}
	return res.RowsAffected, nil
}

// SelectProducts pages through products of one category, or of every
// category when search.ID is zero. search must be normalized.
func (m *ProductMapper) SelectProducts(ctx context.Context, search dto.CategoryDTO) ([]dto.ProductDTO, error) {
	order, ok := sortClauses[search.SortStatus]
	if !ok {
		return nil, errors.Errorf("unknown sort status %q", search.SortStatus)
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("SELECT " + productColumns + " FROM products")
	if search.ID > 0 {
		sb.WriteString(" WHERE category_id = ?")
		args = append(args, search.ID)
	}
	sb.WriteString(" ORDER BY " + order + " LIMIT ? OFFSET ?")
	args = append(args, search.SearchCount, search.PagingStartOffset)

	products := []dto.ProductDTO{}
	if err := m.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&products).Error; err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	return products, nil
}
