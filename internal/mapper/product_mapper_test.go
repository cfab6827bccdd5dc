package mapper

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondhand-market/internal/dto"
)

var productRowColumns = []string{
	"id", "account_id", "title", "contents", "price", "delivery_price", "status",
	"is_trade", "dib_count", "category_id", "file_id", "update_time",
}

func TestRegisterProduct(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec(pg(insertProductSQL)).
		WithArgs("42", "bike", "barely used", int64(120000), int64(3000), "AVAILABLE", false, 0, 2, sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := m.Register(context.Background(), &dto.ProductDTO{
		AccountID:     "42",
		Title:         "bike",
		Contents:      "barely used",
		Price:         120000,
		DeliveryPrice: 3000,
		Status:        dto.ProductStatusAvailable,
		CategoryID:    2,
		UpdateTime:    now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetProduct(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT " + productColumns + " FROM products WHERE id = $1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(int64(7), "42", "bike", "barely used", int64(120000), int64(3000), "RESERVED", true, 4, 2, int64(11), now))

	p, err := m.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, dto.ProductStatusReserved, p.Status)
	assert.True(t, p.IsTrade)
	assert.Equal(t, 4, p.DibCount)
	require.NotNil(t, p.FileID)
	assert.Equal(t, int64(11), *p.FileID)
	assert.True(t, now.Equal(p.UpdateTime))
}

func TestGetProductNoRow(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	mock.ExpectQuery(pg(getProductSQL)).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(productRowColumns))

	p, err := m.GetProduct(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSelectMyProducts(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT " + productColumns + " FROM products WHERE account_id = $1 ORDER BY id DESC").
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(int64(8), "42", "lamp", "", int64(5000), int64(0), "AVAILABLE", false, 0, 1, nil, now).
			AddRow(int64(7), "42", "bike", "", int64(120000), int64(0), "SOLD", false, 2, 2, nil, now))

	products, err := m.SelectMyProducts(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "lamp", products[0].Title)
	assert.Nil(t, products[0].FileID)
	assert.Equal(t, dto.ProductStatusSold, products[1].Status)
}

func TestSelectMyProductsEmpty(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	mock.ExpectQuery(pg(selectMyProductsSQL)).WithArgs("42").WillReturnRows(sqlmock.NewRows(productRowColumns))

	products, err := m.SelectMyProducts(context.Background(), "42")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestUpdateProducts(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	now := time.Now()
	var (
		title   = "bike"
		price   = int64(99000)
		status  = dto.ProductStatusReserved
		isTrade = true
		fileID  = int64(5)
	)
	mock.ExpectExec("UPDATE products SET title = $1, price = $2, status = $3, is_trade = $4, file_id = $5, "+
		"update_time = $6 WHERE id = $7 AND account_id = $8").
		WithArgs("bike", int64(99000), "RESERVED", true, int64(5), now, int64(7), "42").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := m.UpdateProducts(context.Background(), "42", 7, dto.ProductUpdate{
		Title: &title, Price: &price, Status: &status, IsTrade: &isTrade, FileID: &fileID,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUpdateProductsLeavesDibCountAlone(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	now := time.Now()
	title := "bike"
	mock.ExpectExec("UPDATE products SET title = $1, update_time = $2 WHERE id = $3 AND account_id = $4").
		WithArgs("bike", now, int64(7), "42").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := m.UpdateProducts(context.Background(), "42", 7, dto.ProductUpdate{Title: &title}, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteProduct(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	mock.ExpectExec("DELETE FROM products WHERE id = $1 AND account_id = $2").
		WithArgs(int64(7), "42").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := m.DeleteProduct(context.Background(), "42", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIncreaseDibCount(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	mock.ExpectExec("UPDATE products SET dib_count = dib_count + 1 WHERE id = $1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := m.IncreaseDibCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSelectProducts(t *testing.T) {
	tests := []struct {
		name   string
		search dto.CategoryDTO
		sql    string
		args   []driver.Value
	}{
		{
			name:   "one category newest first",
			search: dto.CategoryDTO{ID: 2, SortStatus: dto.SortNewest, SearchCount: 20},
			sql:    "SELECT " + productColumns + " FROM products WHERE category_id = $1 ORDER BY update_time DESC, id DESC LIMIT $2 OFFSET $3",
			args:   []driver.Value{2, 20, 0},
		},
		{
			name:   "all categories by low price",
			search: dto.CategoryDTO{SortStatus: dto.SortLowPrice, SearchCount: 10, PagingStartOffset: 30},
			sql:    "SELECT " + productColumns + " FROM products ORDER BY price ASC, id ASC LIMIT $1 OFFSET $2",
			args:   []driver.Value{10, 30},
		},
		{
			name:   "grade orders by interest",
			search: dto.CategoryDTO{ID: 5, SortStatus: dto.SortGrade, SearchCount: 1},
			sql:    "SELECT " + productColumns + " FROM products WHERE category_id = $1 ORDER BY dib_count DESC, id DESC LIMIT $2 OFFSET $3",
			args:   []driver.Value{5, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, mock := newEqualMockDB(t)
			m := NewProductMapper(gdb)

			mock.ExpectQuery(tt.sql).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(productRowColumns).
					AddRow(int64(1), "42", "lamp", "", int64(5000), int64(0), "AVAILABLE", false, 0, 2, nil, time.Now()))

			products, err := m.SelectProducts(context.Background(), tt.search)
			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}
}

func TestSelectProductsUnknownSort(t *testing.T) {
	gdb, _ := newEqualMockDB(t)
	m := NewProductMapper(gdb)

	_, err := m.SelectProducts(context.Background(), dto.CategoryDTO{SortStatus: "RANDOM", SearchCount: 1})
	assert.Error(t, err)
}
